// Package decoder implements ECC-200 Data Matrix decoding: bit-matrix
// placement (Utah traversal), Reed-Solomon error correction, data-block
// de-interleaving, and the multi-mode bitstream parser.
package decoder

import "github.com/jalphad/barcode"

// ECBlock describes one group of identically-sized error-correction blocks:
// Count blocks, each carrying DataCodewords data codewords. Every version
// uses a single group except version 24, which splits its 10 blocks into an
// 8-block and a 2-block group of slightly different sizes.
type ECBlock struct {
	Count         int
	DataCodewords int
}

// ECBlocks describes a version's error-correction block layout: one shared
// per-block EC codeword count and one or more block-size groups.
type ECBlocks struct {
	ECCodewords int
	Blocks      []ECBlock
}

// NumBlocks returns the total block count across every group.
func (e ECBlocks) NumBlocks() int {
	n := 0
	for _, b := range e.Blocks {
		n += b.Count
	}
	return n
}

// Version describes one ECC-200 symbol size.
type Version struct {
	VersionNumber    int
	SymbolWidth      int
	SymbolHeight     int
	DataRegionWidth  int
	DataRegionHeight int
	TotalCodewords   int
	ECBlocks         ECBlocks
}

// newVersion derives TotalCodewords from the block groups rather than
// carrying it as an independently-transcribed field, so it can never drift
// from the groups it is supposed to summarize.
func newVersion(versionNumber, symbolWidth, symbolHeight, dataRegionWidth, dataRegionHeight, ecCodewordsPerBlock int, blocks ...ECBlock) Version {
	total := 0
	for _, b := range blocks {
		total += b.Count * (b.DataCodewords + ecCodewordsPerBlock)
	}
	return Version{
		VersionNumber:    versionNumber,
		SymbolWidth:      symbolWidth,
		SymbolHeight:     symbolHeight,
		DataRegionWidth:  dataRegionWidth,
		DataRegionHeight: dataRegionHeight,
		TotalCodewords:   total,
		ECBlocks:         ECBlocks{ECCodewords: ecCodewordsPerBlock, Blocks: blocks},
	}
}

// versions is the ECC-200 size table: the 24 square symbol sizes plus the 6
// original rectangular sizes from ISO/IEC 16022 Table 7. The 2006 DMRE
// extension's additional rectangular sizes are not included (see DESIGN.md).
var versions = []Version{
	newVersion(1, 10, 10, 8, 8, 5, ECBlock{1, 3}),
	newVersion(2, 12, 12, 10, 10, 7, ECBlock{1, 5}),
	newVersion(3, 14, 14, 12, 12, 10, ECBlock{1, 8}),
	newVersion(4, 16, 16, 14, 14, 12, ECBlock{1, 12}),
	newVersion(5, 18, 18, 16, 16, 14, ECBlock{1, 18}),
	newVersion(6, 20, 20, 18, 18, 18, ECBlock{1, 22}),
	newVersion(7, 22, 22, 20, 20, 20, ECBlock{1, 30}),
	newVersion(8, 24, 24, 22, 22, 24, ECBlock{1, 36}),
	newVersion(9, 26, 26, 24, 24, 28, ECBlock{1, 44}),
	newVersion(10, 32, 32, 14, 14, 36, ECBlock{1, 62}),
	newVersion(11, 36, 36, 16, 16, 42, ECBlock{1, 86}),
	newVersion(12, 40, 40, 18, 18, 48, ECBlock{1, 114}),
	newVersion(13, 44, 44, 20, 20, 56, ECBlock{1, 144}),
	newVersion(14, 48, 48, 22, 22, 68, ECBlock{1, 174}),
	newVersion(15, 52, 52, 24, 24, 42, ECBlock{2, 102}),
	newVersion(16, 64, 64, 14, 14, 56, ECBlock{2, 140}),
	newVersion(17, 72, 72, 16, 16, 36, ECBlock{4, 92}),
	newVersion(18, 80, 80, 18, 18, 48, ECBlock{4, 114}),
	newVersion(19, 88, 88, 20, 20, 56, ECBlock{4, 144}),
	newVersion(20, 96, 96, 22, 22, 68, ECBlock{4, 174}),
	newVersion(21, 104, 104, 24, 24, 56, ECBlock{6, 136}),
	newVersion(22, 120, 120, 18, 18, 68, ECBlock{6, 175}),
	newVersion(23, 132, 132, 20, 20, 62, ECBlock{8, 163}),
	newVersion(24, 144, 144, 22, 22, 62, ECBlock{8, 156}, ECBlock{2, 155}),
	newVersion(25, 8, 18, 6, 16, 7, ECBlock{1, 5}),
	newVersion(26, 8, 32, 6, 14, 11, ECBlock{1, 10}),
	newVersion(27, 12, 26, 10, 24, 14, ECBlock{1, 16}),
	newVersion(28, 12, 36, 10, 16, 18, ECBlock{1, 22}),
	newVersion(29, 16, 36, 14, 16, 24, ECBlock{1, 32}),
	newVersion(30, 16, 48, 14, 22, 28, ECBlock{1, 49}),
}

// VersionForDimensions looks up the Version matching a scanned symbol's
// module dimensions.
func VersionForDimensions(symbolWidth, symbolHeight int) (*Version, error) {
	for i := range versions {
		if versions[i].SymbolWidth == symbolWidth && versions[i].SymbolHeight == symbolHeight {
			return &versions[i], nil
		}
	}
	return nil, barcode.ErrFormat
}
