// Command barcode decodes 1D barcodes from an image file.
//
// This program is for educational purposes only!
//
// It reuses gozxing's image loading and adaptive binarization to turn a
// photo into a bit matrix, then decodes that matrix with this module's own
// symbology readers instead of gozxing's own decode pipeline.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"

	"github.com/jalphad/barcode"
	"github.com/jalphad/barcode/bitutil"
	"github.com/jalphad/barcode/oned"
	"github.com/jalphad/barcode/result"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		return
	}

	verbose := false
	imagePath := os.Args[1]
	if os.Args[1] == "-v" {
		verbose = true
		if len(os.Args) < 3 {
			printUsage()
			return
		}
		imagePath = os.Args[2]
	}

	file, err := os.Open(imagePath)
	if err != nil {
		fmt.Printf("Error opening image: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		fmt.Printf("Error decoding image: %v\n", err)
		os.Exit(1)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		fmt.Printf("Error binarizing image: %v\n", err)
		os.Exit(1)
	}
	zxMatrix, err := bmp.GetBlackMatrix()
	if err != nil {
		fmt.Printf("Error computing black matrix: %v\n", err)
		os.Exit(1)
	}

	provider := barcode.NewBitMatrixProvider(toBitMatrix(zxMatrix))

	hints := &barcode.DecodeHints{TryHarder: true}
	reader := oned.NewMultiFormatOneDReader(hints)

	fmt.Println("=== Barcode Decode ===")
	decoded, err := reader.Decode(provider, hints)
	if err != nil {
		fmt.Printf("Error decoding barcode: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Format: %s\n", decoded.Format)
	fmt.Printf("Text:   %s\n", decoded.Text)
	if verbose {
		for _, p := range decoded.Points {
			fmt.Printf("  point: (%.1f, %.1f)\n", p.X, p.Y)
		}
	}

	parsed := result.Parse(decoded.Text, decoded.Format, decoded.Metadata)
	fmt.Printf("Parsed as %v: %s\n", parsed.Type(), parsed.DisplayResult())
}

// toBitMatrix copies a gozxing BitMatrix into this module's own BitMatrix
// representation so the row-scan driver never depends on gozxing's types.
func toBitMatrix(zx *gozxing.BitMatrix) *bitutil.BitMatrix {
	width, height := zx.GetWidth(), zx.GetHeight()
	m := bitutil.NewBitMatrix(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if zx.Get(x, y) {
				m.Set(x, y)
			}
		}
	}
	return m
}

func printUsage() {
	fmt.Println("barcode: decode 1D barcodes from an image")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  barcode [-v] <image>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -v    verbose (print result points)")
}
