package logging_test

import (
	"github.com/AdrianoMourthe/onlinestat/core/testenv"
)

var makeAR = testenv.MakeAR
