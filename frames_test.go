package export

import (
	"fmt"
	"testing"
)

func TestResolveFramesRange(Te *testing.T) {
	fmt.Println("Frame range resolution test!")
	frames, err := ResolveFrames(8, FrameRange(1, 5, 2))
	if err != nil {
		Te.Fatal(err)
	}
	want := []int{1, 3, 5}
	if len(frames) != len(want) {
		Te.Fatalf("got %v, wanted %v", frames, want)
	}
	for i, v := range want {
		if frames[i] != v {
			Te.Errorf("got %v, wanted %v", frames, want)
		}
	}
	//the resolved list must be strictly increasing, start at start,
	//end at or before end, and land on stride multiples.
	cases := [][3]int{{0, 7, 1}, {2, 6, 3}, {0, 100, 2}, {5, 5, 1}, {3, 9, 4}}
	for _, c := range cases {
		frames, err := ResolveFrames(8, FrameRange(c[0], c[1], c[2]))
		if err != nil {
			Te.Errorf("range %v: %v", c, err)
			continue
		}
		if frames[0] != c[0] {
			Te.Errorf("range %v: first index %d, wanted %d", c, frames[0], c[0])
		}
		last := frames[len(frames)-1]
		if last > c[1] || last > 7 {
			Te.Errorf("range %v: last index %d past the end", c, last)
		}
		if (last-c[0])%c[2] != 0 {
			Te.Errorf("range %v: last index %d off stride", c, last)
		}
		for i := 1; i < len(frames); i++ {
			if frames[i] <= frames[i-1] {
				Te.Errorf("range %v: not strictly increasing: %v", c, frames)
			}
		}
	}
}

func TestResolveFramesAllAndSingle(Te *testing.T) {
	frames, err := ResolveFrames(5, AllFrames())
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 5 || frames[0] != 0 || frames[4] != 4 {
		Te.Errorf("all frames of 5 gave %v", frames)
	}
	frames, err = ResolveFrames(5, SingleFrame(3))
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 1 || frames[0] != 3 {
		Te.Errorf("single frame 3 gave %v", frames)
	}
	//default end is the last frame, default stride 1
	frames, err = ResolveFrames(4, FrameRange(1, -1, 1))
	if err != nil {
		Te.Fatal(err)
	}
	if len(frames) != 3 || frames[2] != 3 {
		Te.Errorf("open-ended range gave %v", frames)
	}
}

func TestResolveFramesErrors(Te *testing.T) {
	var rerr *InvalidRangeError
	if _, err := ResolveFrames(8, FrameRange(5, 1, 1)); err == nil {
		Te.Error("start past end should fail")
	} else if !asError(err, &rerr) {
		Te.Errorf("start past end gave wrong error type: %v", err)
	}
	if _, err := ResolveFrames(8, FrameRange(1, 5, -2)); err == nil {
		Te.Error("negative stride should fail")
	}
	if _, err := ResolveFrames(8, FrameRange(-1, 5, 1)); err == nil {
		Te.Error("negative start should fail")
	}
	if _, err := ResolveFrames(8, FrameRange(1, 5, 0)); err == nil {
		Te.Error("explicit zero stride should fail")
	}
	var ferr *FrameOutOfRangeError
	if _, err := ResolveFrames(8, SingleFrame(8)); err == nil {
		Te.Error("single frame at the count should fail")
	} else if !asError(err, &ferr) {
		Te.Errorf("out of range frame gave wrong error type: %v", err)
	}
	if _, err := ResolveFrames(0, FrameRange(0, -1, 1)); err == nil {
		Te.Error("range over an empty source should fail")
	}
	//selections never resolve to an empty list: all-frames over an empty
	//source fails instead
	if _, err := ResolveFrames(0, AllFrames()); err == nil {
		Te.Error("all frames of an empty source should fail")
	} else if !asError(err, &ferr) {
		Te.Errorf("all frames of an empty source gave wrong error type: %v", err)
	}
}
