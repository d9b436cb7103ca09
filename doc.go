// Package pixedit provides a pure-Go implementation of an image editor's pixel pipeline.
//
// A source image is decoded into an RGBA Buffer, passed through the tone/color adjustment
// stage and the 3x3 sharpen convolution, and committed as a Frame by the Editor, which also
// keeps a linear undo/redo History of PNG snapshots. Stages never mutate their input, so
// every render pass works on freshly allocated buffers.
package pixedit
