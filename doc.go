// # go-readme
//
// `go-readme` regenerates a package's `README.md` from its `package.json`.
// The top of the README is rebuilt on every run; everything the author wrote
// below the marker line is preserved byte for byte:
//
//	<!-- anything below this line will be safe from template removal -->
//
// ## Generated sections
//
// In order, skipping any section with nothing to show:
//
//   - `# <title>`: the GitHub repository name, else the package name, else
//     `untitled`.
//   - badges: semantic release and coverage workflow badges when
//     `repository.url` points at GitHub, and an npm version badge when the
//     package is named.
//   - the package `description`.
//   - `## Install`: `npm install <name>`, installed globally with an example
//     invocation when the package declares a `bin`.
//   - ``## Use directly via `npx` ``: the npx invocation of the primary
//     command.
//   - the marker line.
//
// The optional `usage` field is a template where `CMD` is replaced by the
// command, e.g. `"usage": "CMD <file>"`.
//
// ## Usage
//
//	go run . # in a directory containing package.json
//
// The command takes no arguments. It exits with status 0 on success. On
// failure it prints the error message on stderr, exits with status 1 and
// leaves the README untouched.
package main
