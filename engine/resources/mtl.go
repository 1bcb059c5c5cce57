package resources

import (
	"bufio"
	"bytes"
	"strings"
)

// scanNormalMaps extracts per-material normal map file names from raw MTL
// text. The MTL parser does not surface bump statements, so this pass scans
// for them directly. The file name is the last field of the statement, which
// skips option flags such as "-bm 1.0".
//
// Parameters:
//   - mtl: raw MTL file contents
//
// Returns:
//   - map[string]string: material name to normal map file name
func scanNormalMaps(mtl []byte) map[string]string {
	out := make(map[string]string)
	current := ""

	scanner := bufio.NewScanner(bytes.NewReader(mtl))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "newmtl":
			current = fields[1]
		case "map_bump", "bump", "norm", "map_kn":
			if current != "" {
				out[current] = fields[len(fields)-1]
			}
		}
	}
	return out
}
