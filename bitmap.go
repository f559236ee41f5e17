package shape

// Bitmap is a decoded raster image, in straight (non-premultiplied) sRGBA
// order (spec §6). Width*Height*4 == len(Pixels).
type Bitmap struct {
	Width, Height int
	Pixels        []byte
}

// BitmapProvider resolves a DefineBitmap tag's id to its decoded pixels
// (spec §6). The decoder itself never calls a BitmapProvider: FillStyle
// carries a BitmapIndex into the shape's DependencySet, and resolving that
// index to pixels is entirely the caller's concern, done before or after
// Decode/DecodeMorph. The interface exists so callers share one contract;
// bitmapcodec provides a reference implementation built on image codecs the
// corpus uses elsewhere.
type BitmapProvider interface {
	// GetByID returns the bitmap registered under id, or ErrBitmapNotFound.
	GetByID(id uint16) (Bitmap, error)
}
