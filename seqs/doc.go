/*
Package seqs provides lazy, composable transformations over Go 1.23+
iterators (iter.Seq).

Every operator is a pull adapter: it consumes one or more sequences and
returns a new sequence whose elements are computed on demand, one at a time,
without materializing the input or the output. Operators compose by nesting
calls, and no element is pulled from a source until the consumer asks for
the next output element.

The package includes:

  - **Transformations**: [Map], [Filter], [FlatMap], [Peek], [Concat],
    [Enumerate], [Dedup], [Scan].
  - **Flow Control**: [Take], [Drop], [TakeWhile], [DropWhile].
  - **Buffered adapters**: [Window] (sliding window over a fixed ring buffer),
    [Chunk] (fixed-size grouping with selectable trailing-group strategy).
  - **Multiplexing**: [Zip], [ZipLongest], and the N-ary [ZipN] with
    [Shortest], [Longest] and [Strict] strategies.
  - **Generators**: [Repeat], [RepeatN], [Iterate], [Count], [Cycle], [Range].
  - **Sinks**: [First], [Last], [Any], [All], [Length], [Reduce], [Sum].

# Indexes

Callbacks receive the 0-based index of the element as a second argument. The
index counts produced elements and increments by one per output, with two
documented exceptions: [DropWhile]'s predicate sees the indexes of the
elements it skips, and [FlatMap]'s mapping is indexed by source element.

# Error Handling

Invalid arguments (a negative [Take]/[Drop] limit, a non-positive [Window]
or [Chunk] size, an unknown strategy) panic when the operator is called,
before any element is pulled. Violations that can only be detected
mid-traversal panic with an exported sentinel ([ErrShortChunk],
[ErrZipLength]) at the pull that detects them, so callers can recover and
match with errors.Is. Callbacks that need to report failures use the "Try"
variants ([TryMap], [TryFilter], [TryReduce]), which propagate errors to the
consumer unwrapped.

# Consumption

Sequences are single-consumer and one-shot: an adapter chain owns its
sources and must be the only thing pulling from them. [Cycle] is the one
operator that deliberately buffers its source so it can replay it.
*/
package seqs
