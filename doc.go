// Package inputkit decides whether untrusted input is well formed before an
// application accepts it.
//
// The toolkit is split into three independent validator packages plus a
// facade that carries application settings:
//
//   - [filevalidator]: sniffs a file's real media type from its bytes and
//     classifies it as an image, a video or invalid, optionally requiring the
//     file name to carry the matching extension.
//   - [urlvalidator]: checks a URL or host name against a strict grammar,
//     optionally restricting the top-level domain to a whitelist.
//   - [uuidvalidator]: checks version-5 UUID strings and binds a UUID to the
//     exact bytes it was derived from.
//
// [filevalidator]: https://pkg.go.dev/github.com/gobeaver/inputkit/filevalidator
// [urlvalidator]: https://pkg.go.dev/github.com/gobeaver/inputkit/urlvalidator
// [uuidvalidator]: https://pkg.go.dev/github.com/gobeaver/inputkit/uuidvalidator
//
// # Quick Start
//
// Using environment configuration (BEAVER_INPUTKIT_* variables):
//
//	kit, err := inputkit.New(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	kind, err := kit.ValidateFile("uploads/cat.jpg")
//	ok := kit.ValidateURL("https://example.com/cats")
//	id := kit.Derive(content)
//	bound := kit.ValidateFileUUID(content, id) // true
//
// Using explicit configuration:
//
//	kit, err := inputkit.New(&inputkit.Config{
//	    Namespace:      inputkit.DefaultNamespace,
//	    TLDWhitelist:   ".com,.ch",
//	    CheckExtension: true,
//	})
//
// Using a custom environment prefix:
//
//	kit, err := inputkit.WithPrefix("MYAPP_").New() // MYAPP_INPUTKIT_NAMESPACE, ...
//
// # Design Philosophy
//
// Every check is a pure decision: nothing is logged, retried or cached, and
// failures are returned to the caller as values. The only side effect is the
// read-only file access of the file validator. Reporting and recovery belong
// to the application.
package inputkit
