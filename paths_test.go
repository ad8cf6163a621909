package export

import (
	"fmt"
	"testing"
)

func TestResolvePathsWildcard(Te *testing.T) {
	fmt.Println("Output path resolution test!")
	frames := []int{1, 3, 5}
	paths, perFrame, err := ResolvePaths("out.*.dump", frames, false)
	if err != nil {
		Te.Fatal(err)
	}
	if !perFrame {
		Te.Error("a wildcard must force per-frame files, whatever the flag")
	}
	want := []string{"out.1.dump", "out.3.dump", "out.5.dump"}
	for i, p := range want {
		if paths[i] != p {
			Te.Errorf("path %d: got %q, wanted %q", i, paths[i], p)
		}
	}
	//N frames must give N distinct paths
	seen := make(map[string]bool)
	for _, p := range paths {
		if seen[p] {
			Te.Errorf("duplicated path %q", p)
		}
		seen[p] = true
	}
	//no zero padding: frame 10 becomes "10", not "010"
	paths, _, err = ResolvePaths("f*", []int{10}, true)
	if err != nil || paths[0] != "f10" {
		Te.Errorf("frame 10 gave %v, %v", paths, err)
	}
}

func TestResolvePathsSingleFile(Te *testing.T) {
	paths, perFrame, err := ResolvePaths("out.dump", []int{0, 1, 2}, true)
	if err != nil {
		Te.Fatal(err)
	}
	if perFrame || len(paths) != 1 || paths[0] != "out.dump" {
		Te.Errorf("accumulating mode gave %v, perFrame=%v", paths, perFrame)
	}
	paths, perFrame, err = ResolvePaths("out.dump", []int{4}, false)
	if err != nil || perFrame || paths[0] != "out.dump" {
		Te.Errorf("single frame mode gave %v, %v", paths, err)
	}
}

func TestResolvePathsErrors(Te *testing.T) {
	var aerr *AmbiguousOutputError
	_, _, err := ResolvePaths("out.dump", []int{1, 2}, false)
	if err == nil {
		Te.Error("several frames into one fixed name without the flag should fail")
	} else if !asError(err, &aerr) {
		Te.Errorf("wrong error type: %v", err)
	}
	if _, _, err := ResolvePaths("out.*.*.dump", []int{1}, false); err == nil {
		Te.Error("two wildcards should fail")
	}
	var cerr *PathCollisionError
	_, _, err = ResolvePaths("out.*.dump", []int{3, 3}, false)
	if err == nil {
		Te.Error("colliding frames should fail")
	} else if !asError(err, &cerr) {
		Te.Errorf("wrong error type: %v", err)
	}
}
