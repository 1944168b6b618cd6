package auth

// Writer adapts an in-progress State to io.Writer.
// Everything written is absorbed into the state as the next part of the
// message.
type Writer[S any] struct {
	Scheme Scheme[S]
	State  *S
}

func (w *Writer[S]) Write(p []byte) (int, error) {
	w.Scheme.Update(w.State, p)
	return len(p), nil
}
