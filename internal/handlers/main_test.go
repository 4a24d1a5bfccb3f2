package handlers_test

import (
	"strconv"
)

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}
