// Package stream provides the byte source helpers format plugins share.
//
// Every input is an io.ReadSeeker. Recognizers use Probe to read a bounded
// prefix and HasExtension for the cheap extension check. Text formats wrap
// the stream in a LineReader, which reads one line at a time and exposes
// the absolute byte position so that an over-read line can be returned to
// the stream with Seek:
//
//	lr, err := stream.NewLineReader(f, stream.Latin1())
//	pos := lr.Pos()
//	line, err := lr.ReadLine()
//	if belongsToNextSection(line) {
//	    err = lr.Seek(pos)
//	}
package stream
