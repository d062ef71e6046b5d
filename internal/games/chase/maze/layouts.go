package maze

// Classic is the 19x21 layout every level is built from.
var Classic = []string{
	"###################",
	"#........#........#",
	"#o##.###.#.###.##o#",
	"#.................#",
	"#.##.#.#####.#.##.#",
	"#....#...#...#....#",
	"####.###.#.###.####",
	"   #.#.......#.#   ",
	"####.#.## ##.#.####",
	"#......#GGG#......#",
	"####.#.#GGG#.#.####",
	"   #.#.......#.#   ",
	"####.#.#####.#.####",
	"#........#........#",
	"#.##.###.#.###.##.#",
	"#o.#.....P.....#.o#",
	"##.#.#.#####.#.#.##",
	"#....#...#...#....#",
	"#.######.#.######.#",
	"#.................#",
	"###################",
}

// Builder constructs a fresh maze for a level. Levels are 1-indexed.
type Builder func(level int) *Maze

// ClassicBuilder rebuilds the Classic layout for every level.
func ClassicBuilder(int) *Maze {
	return MustParse(Classic)
}
