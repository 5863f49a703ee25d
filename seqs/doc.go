/*
Package seqs provides lazy integer ranges and small combinators over Go iterators (iter.Seq).

  - **Ranges**: [Range], [XRange] and [Collect] produce start/end/step integer sequences.
    A zero step is rejected with [ErrInvalidArgument] instead of looping forever.
  - **Zipping**: [ZipAll] walks any number of sequences in lockstep and stops at the shortest.
  - **Transformations**: [Map], [TryReduce], [Enumerate].

Every sequence returned by this package is a factory: ranging over it twice runs two
independent passes.

	seq, err := seqs.XRange(5, 0, -1)
	if err != nil {
		return err
	}
	for v := range seq {
		fmt.Println(v) // 5 4 3 2 1
	}

# Error Handling

[TryReduce] surfaces reducer errors to the caller and stops at the first one, returning
the accumulator reached so far.
*/
package seqs
