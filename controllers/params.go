package controllers

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// toInt reads an integer id from a JSON body value. Strings are parsed in
// base 10 only, so "010" is slot 10 and "0x10" is rejected.
func toInt(v interface{}) (int, error) {
	if s, ok := v.(string); ok {
		return strconv.Atoi(strings.TrimSpace(s))
	}
	return cast.ToIntE(v)
}
