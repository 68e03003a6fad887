// Package fs discovers markdown inputs on disk and reads them into
// documents, separating front matter from the markdown body.
package fs
