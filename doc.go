// Package namekit batch-renames design elements (components, styles and
// variables) by converting their names to a naming convention or by applying
// a find/replace rule, and previews every rename before it is committed.
//
// # Overview
//
// The library is split into small packages that build on each other:
//
//   - casing: convert a name to camelCase, snake_case, kebab-case, PascalCase,
//     Title Case or UPPER_CASE
//   - pattern: literal or regular-expression find/replace and name filtering
//   - element: element categories, subtypes and the naming target each one
//     routes to
//   - preview: compute the original and processed name of every item under a
//     rename config
//   - bridge: the host contracts (item source, rename sink) and a Session
//     that drives fetch, preview, commit and refetch
//   - document: a YAML or JSON design document that acts as a host
//   - nkerrors: typed errors shared by the packages above
//
// # Installation
//
//	go get github.com/erraggy/namekit
//
// The command-line tool lives in cmd/namekit:
//
//	go install github.com/erraggy/namekit/cmd/namekit@latest
//
// # Quick Start
//
// Convert a single name:
//
//	casing.Convert("getHTTPResponse", casing.Snake) // "get_http_response"
//
// Preview and apply a rename against a design document:
//
//	doc, err := document.Load("design.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	cfg := preview.DefaultConfig(element.Component)
//	cfg.SetFormat(element.NodeName, casing.Pascal)
//
//	s := bridge.NewSession(doc, element.Component, bridge.WithConfig(cfg))
//	if err := s.Load(ctx); err != nil {
//		log.Fatal(err)
//	}
//	for _, e := range s.Preview() {
//		fmt.Printf("%s -> %s\n", e.Original, e.Processed)
//	}
//	res, err := s.ApplyAll(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("renamed %d\n", res.Renamed)
//	if err := doc.Save("design.yaml"); err != nil {
//		log.Fatal(err)
//	}
//
// # MCP Server
//
// `namekit mcp` serves the same operations as MCP tools over stdio; see
// internal/mcpserver for the tool list and NAMEKIT_* settings.
package namekit
