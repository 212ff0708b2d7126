// Package serialization reads and writes network weight files.
//
// A weight file is a flat, headerless run of 8-byte IEEE-754 float64
// values in the machine's native byte order:
//
//	Format Structure:
//	  [layer 0 weight, row-major]
//	  [layer 0 bias]
//	  [layer 1 weight, row-major]
//	  ...
//
// There is no magic, no shape metadata, no version and no checksum. The
// reader must already know how many values the target network holds,
// and a file written for one topology silently loads into any other
// topology with the same parameter count.
//
// Example usage:
//
//	w, err := serialization.NewWeightWriter("net.weights")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := w.WriteValues(values); err != nil {
//	    log.Fatal(err)
//	}
//	w.Close()
//
//	r, err := serialization.NewWeightReader("net.weights")
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, serialization.ErrNoSavedWeights)
//	}
//	defer r.Close()
//	values, err := r.ReadValues(len(values))
package serialization
