// Package browser binds the camera input model to a web page when compiled for js/wasm.
// The page document is the input.Document and a canvas element is the input.Surface; pointer lock
// uses the DOM Pointer Lock API.
package browser
