package entity

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Grupos de orden de tallas: nombradas < numéricas < desconocidas < vacías.
const (
	sizeGroupNamed = iota
	sizeGroupNumeric
	sizeGroupUnknown
	sizeGroupBlank
)

// sizeRankTable orden ascendente de las tallas de confección conocidas.
// 2XL y XXL comparten posición.
var sizeRankTable = map[string]int{
	"XXS":  0,
	"XS":   1,
	"S":    2,
	"M":    3,
	"M-CP": 4,
	"L":    5,
	"XL":   6,
	"2XL":  7,
	"XXL":  7,
	"3XL":  8,
	"4XL":  9,
	"5XL":  10,
	"6XL":  11,
	"7XL":  12,
	"8XL":  13,
}

// SizeKey clave de orden de una talla.
type SizeKey struct {
	Group int
	Value int64
}

// SizeSortKey calcula la clave de orden de una talla (sin distinguir mayúsculas).
func SizeSortKey(size string) SizeKey {
	s := strings.ToUpper(strings.TrimSpace(size))
	if s == "" {
		return SizeKey{Group: sizeGroupBlank}
	}
	if rank, ok := sizeRankTable[s]; ok {
		return SizeKey{Group: sizeGroupNamed, Value: int64(rank)}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return SizeKey{Group: sizeGroupNumeric, Value: n}
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return SizeKey{Group: sizeGroupUnknown, Value: int64(h.Sum32())}
}

// CompareSizes devuelve -1, 0 o 1 según el orden de tallas del dominio.
func CompareSizes(a, b string) int {
	ka, kb := SizeSortKey(a), SizeSortKey(b)
	switch {
	case ka.Group != kb.Group:
		if ka.Group < kb.Group {
			return -1
		}
		return 1
	case ka.Value < kb.Value:
		return -1
	case ka.Value > kb.Value:
		return 1
	}
	return 0
}

// SortSizes ordena in-place según CompareSizes; los empates conservan el orden de entrada.
func SortSizes(sizes []string) {
	sort.SliceStable(sizes, func(i, j int) bool {
		return CompareSizes(sizes[i], sizes[j]) < 0
	})
}
