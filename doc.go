// # glad-docmd
//
// `glad-docmd` annotates GLAD-generated OpenGL loader headers with Doxygen
// docblocks. It merges two knowledge sources: the machine-readable Khronos
// API registry (`gl.xml`) and the human-authored DocBook reference pages,
// and inserts one synthesized comment block above every alias macro of the
// form `#define glFoo glad_glFoo`.
//
// Key behaviors:
//
//   - resolve command alias chains so aliased entry points inherit the
//     canonical command's documentation (cycle-safe).
//   - merge signatures with layered fallback: refpage prototype for the
//     literal name, then for the canonical name, then the registry's own
//     prototype; nothing is emitted when neither source knows the function.
//   - tolerate malformed refpages via a single lenient re-parse (doctype and
//     unresolvable entities stripped); unrecoverable pages count as absent.
//   - record provenance: the lowest core version that required the command
//     and/or the extensions that introduce it, sorted for determinism.
//   - rewrite idempotently: any previously generated block immediately above
//     a macro is removed before the fresh one is inserted, so running the
//     tool on its own output reproduces it byte for byte.
//
// ## Usage
//
//	glad-docmd --in include/glad/gl.h --xml gl.xml --refpages ref/gl4 --out gl_doc.h
//
// Flags:
//
//   - `--in`: the loader header to annotate.
//   - `--xml`: the API registry document.
//   - `--refpages`: directory of DocBook refpages, one `<function>.xml` per
//     command. Optional; without it blocks are built from registry data only
//     and `\see` links use the default `gl4` collection tag.
//   - `--out`: where to write the annotated header (`-` for stdout).
//   - `--api`: which registry api's feature blocks supply version numbers
//     (default `gl`).
//   - `--config`/`-c`: a YAML file supplying defaults for the flags above.
//   - `--verbose`/`-v`: debug logging.
//
// ## Emitted block format
//
//	/**
//	 * \brief bind a named buffer object.
//	 * \param target (GLenum) - Specifies the target to which the buffer object is bound.  [group: BufferTargetARB]
//	 * \param buffer (GLuint) - Specifies the name of a buffer object.
//	 * \see https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBindBuffer.xhtml
//	 * \note Introduced in OpenGL 1.5
//	 */
//	#define glBindBuffer glad_glBindBuffer
//
// A `\return (<type>)` line appears for non-void commands; the `\note` line
// lists the introducing version, the extensions, both, or is omitted.
//
// ## Shell Completion and CLI Docs
//
// Autocompletion is provided via Cobra's generators:
//
//	glad-docmd completion bash        # bash
//	glad-docmd completion zsh         # zsh
//	glad-docmd completion fish | source
//	glad-docmd completion powershell | Out-String | Invoke-Expression
//
// `glad-docmd gen-docs ./docs/cli` writes a Markdown reference file per CLI
// command.
package main
