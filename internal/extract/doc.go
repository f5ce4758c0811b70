// Package extract pulls raw cover-image bytes out of e-book container
// formats.
//
// Each supported format has its own extractor working against a seekable
// byte stream:
//   - EPUB: zip archive, three-pass heuristic (cover-named entries, OPF
//     manifest metadata, largest image fallback)
//   - MOBI/AZW/AZW3/KF8/PRC: Palm database records with an EXTH metadata
//     block holding an optional explicit cover record
//   - CBZ/CBR: first page image in lexicographic entry order
//   - FB2: base64 <binary> payload referenced from <coverpage>
//   - TXT: synthesized flat placeholder (no real cover exists)
//
// Extractors return the undecoded image bytes as stored in the container;
// decoding and resizing is the thumbnail package's job. Extraction is
// synchronous and makes no retries: any failure is terminal for the
// request.
package extract
