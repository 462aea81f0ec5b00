package common

const (
	// TileSize is the world size of one level tile and of the hero sprite frame.
	TileSize = 64

	maxScreenCol = 16
	maxScreenRow = 12

	BaseWidth  = TileSize * maxScreenCol // 1024
	BaseHeight = TileSize * maxScreenRow // 768

	// FrameInterval is the minimum elapsed time, in seconds, between two
	// accepted update ticks.
	FrameInterval = 0.016
)
