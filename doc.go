// Package proompt provides composable building blocks for assembling
// structured natural-language prompts for LLMs: data providers, tools
// described in natural language, contextual metadata, and sections that
// combine them into final text.
//
// # Overview
//
// A Prompt is an ordered list of Sections. Each Section owns a Context,
// a list of Providers, and a list of Tools. Tools arrive in heterogeneous
// shapes (native *Tool, foreign tool objects, named collections) and are
// normalized into *Tool descriptors the moment they are added, so every
// downstream consumer sees one canonical shape.
//
// Pipeline: Context + tools + providers → Section → Prompt → Render →
// header + section texts joined with a separator + footer.
//
// # Key concepts
//
//   - Total normalization: Normalize accepts any value and never fails;
//     unrecognized or nil inputs are silently skipped so call sites can
//     pass loosely typed tool lists without validation ceremony.
//   - Borrowed callables: a Tool carries an opaque reference to its
//     underlying function but never invokes it. Execution belongs to the
//     downstream consumer of the rendered text.
//   - Fresh renders: provider results are never cached; every Render
//     re-runs every provider, and provider errors abort the whole render.
//
// See Tool, Toolset, Normalize, Section, and Prompt for the core types,
// and NewSection / NewTextPrompt for setup.
//
// # Example
//
//	weather, err := proompt.NewTool(getWeather, proompt.WithDescription("Current weather for a city"))
//	if err != nil { ... }
//	sec := analysisSection{proompt.NewSection(reviewContext, []any{weather}, metricsProvider)}
//	prompt := proompt.NewTextPrompt(proompt.WithHeader("# REVIEW\n\n"), proompt.WithSections(&sec))
//	text, err := prompt.Render(ctx)
package proompt
