package util

import (
	"os"
	"sort"

	"golang.org/x/exp/constraints"
)

func EnsureOutputDir(dir string) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		panic("Could not create output dir: " + err.Error())
	}
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
