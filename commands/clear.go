package commands

import (
	"fmt"

	"github.com/osama1998H/ocean/core/vos"
)

// ClearSequence erases the screen and homes the cursor on VT100 terminals.
const ClearSequence = "\033[2J\033[H"

// Clear clears the terminal.
func Clear(virtOS vos.VOS) int {
	fmt.Fprint(virtOS.Stdout(), ClearSequence)
	return 0
}

var _ vos.ProcessFunc = Clear

func init() {
	mustAddBuiltin("clear", "مسح الشاشة / Clear the screen", Clear, "امسح", "clear", "cls")
}
