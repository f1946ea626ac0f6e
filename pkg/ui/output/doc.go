// Package output implements a declarative, template-based rendering system for
// dotdash's command-line interface.
//
// # Architecture Overview
//
// The output package provides a clean separation between data, structure, and
// presentation through three main components:
//
//  1. Style Registry (styles/): Defines all visual styles using lipgloss
//  2. Templates (templates/): Go templates that define output structure
//  3. Renderer: Orchestrates template execution and style application
//
// # Rendering Pipeline
//
// The rendering process follows these steps:
//
//  1. Commands return structured data (types.Report)
//  2. Renderer executes the report template with the data
//  3. Template output contains XML-like style tags (e.g., <Bold>text</Bold>)
//  4. Lipbalm expands style tags to ANSI escape codes
//  5. Final output is written to the provided io.Writer
//
// # Usage Example
//
//	renderer, err := output.NewRenderer(os.Stdout, false)
//	if err != nil {
//	    return err
//	}
//
//	report := &types.Report{
//	    Command:  "link",
//	    Profiles: []types.ProfileReport{...},
//	}
//	err = renderer.Render(report)
//
// # Template System
//
// Templates use standard Go text/template syntax with custom style tags:
//
//	<ProfileHeader>{{.Name}}</ProfileHeader>
//	<FilePath>{{.Path}}</FilePath>
//	<Success>linked</Success>
//
// Style tags correspond to entries in the style registry and are automatically
// expanded to the appropriate ANSI codes based on terminal capabilities.
//
// # Color Support
//
// The renderer automatically detects terminal capabilities and handles:
//   - Full color terminals (256 colors, true color)
//   - NO_COLOR environment variable
//   - Adaptive colors that adjust to light/dark themes
//   - Graceful fallback to plain text
package output
