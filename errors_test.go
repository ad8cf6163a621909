package export

import (
	"errors"
	"os"
	"testing"
)

func TestErrorDecoration(Te *testing.T) {
	var err error = &UnknownStyleError{Style: "weird", Format: LammpsData}
	err = errDecorate(err, "TestErrorDecoration")
	err = errDecorate(err, "caller2")
	deco := err.(Error).Decorate("")
	if len(deco) != 2 || deco[0] != "TestErrorDecoration" || deco[1] != "caller2" {
		Te.Errorf("decoration came out as %v", deco)
	}
	//decorating a plain error must pass it through untouched
	plain := errors.New("plain")
	if errDecorate(plain, "x") != plain {
		Te.Error("plain errors should pass through errDecorate")
	}
}

func TestIOErrorUnwrap(Te *testing.T) {
	inner := os.ErrNotExist
	err := &IOError{Op: "create", Path: "/nope", Err: inner}
	if !errors.Is(err, os.ErrNotExist) {
		Te.Error("IOError should unwrap to the filesystem error")
	}
	var ioerr *IOError
	if !errors.As(error(err), &ioerr) {
		Te.Error("errors.As should find the IOError")
	}
}
