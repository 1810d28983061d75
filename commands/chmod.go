package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/osama1998H/ocean/core/vos"
)

const (
	ModeMaskUser  fs.FileMode = 0700
	ModeMaskGroup             = 0070
	ModeMaskOther             = 0007
	ModeMaskAll               = ModeMaskUser | ModeMaskGroup | ModeMaskOther

	ModeRead  fs.FileMode = 0444
	ModeWrite             = 0222
	ModeExec              = 0111

	ChmodMask = ModeMaskAll
)

func blendChmod(origValue, newValue fs.FileMode) fs.FileMode {
	return (origValue &^ ChmodMask) | (newValue & ChmodMask)
}

func ChmodApplyMode(mode string, orig fs.FileMode) (fs.FileMode, error) {

	// If mode is an octal integer, the value is absolute
	if octalMode, err := strconv.ParseUint(mode, 8, 32); err == nil {
		return blendChmod(orig, fs.FileMode(octalMode)), nil
	}

	var who fs.FileMode
	var apply fs.FileMode
	var action func(orig, who, apply fs.FileMode) fs.FileMode

	// Simplified grammar: a single clause of who, one action, and permissions.
	for _, modeChar := range mode {
		switch modeChar {
		// Mask groups
		case 'a':
			who |= ModeMaskAll
		case 'u':
			who |= ModeMaskUser
		case 'g':
			who |= ModeMaskGroup
		case 'o':
			who |= ModeMaskOther
		case '+':
			action = func(orig, who, apply fs.FileMode) fs.FileMode {
				return blendChmod(orig, orig|(apply&who))
			}
		case '=':
			action = func(orig, who, apply fs.FileMode) fs.FileMode {
				return blendChmod(orig, (apply & who))
			}
		case '-':
			action = func(orig, who, apply fs.FileMode) fs.FileMode {
				return blendChmod(orig, orig & ^(apply&who))
			}
		case 'r':
			apply |= ModeRead
		case 'w':
			apply |= ModeWrite
		case 'x':
			apply |= ModeExec
		case 'X':
			if (orig&ModeExec) > 0 || (orig&fs.ModeDir) > 0 {
				apply |= ModeExec
			}
		case 's', 't':
			// Not supported, ignored.
		default:
			return orig, fmt.Errorf("unknown symbol %q", modeChar)
		}
	}

	if action == nil {
		return orig, errors.New("no action provided")
	}

	if who == 0 {
		who = ModeMaskAll
	}

	return action(orig, who, apply), nil
}

// Chmod changes file mode bits. Modes may be octal or symbolic like u+x.
func Chmod(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "صلاحيات MODE FILE...",
		Short: "تغيير الصلاحيات / Change the mode of each FILE to MODE.",
	}

	// Symbolic modes such as -w look like flags so arguments are parsed by
	// hand.
	args := virtOS.Args()
	if len(args) == 2 && (args[1] == "--help" || args[1] == "-h") {
		cmd.PrintHelp(virtOS.Stdout())
		return 0
	}
	if len(args) < 3 {
		printError(virtOS, "يرجى تحديد الصلاحيات والملف", "missing operand")
		cmd.PrintHelp(virtOS.Stderr())
		return 1
	}

	modeExpr := args[1]
	paths := args[2:]

	var anyFailed bool
	for _, path := range paths {
		stat, err := virtOS.Stat(path)
		if err != nil {
			printError(virtOS, "لا يمكن قراءة '%s' - %v", "Cannot stat '%s' - %v", path, err)
			anyFailed = true
			continue
		}

		newMode, err := ChmodApplyMode(modeExpr, stat.Mode())
		if err != nil {
			virtOS.LogInvalidInvocation(err)
			printError(virtOS, "صلاحيات غير صالحة '%s' - %v", "invalid mode '%s' - %v", modeExpr, err)
			return 1
		}

		if err := virtOS.Chmod(path, newMode); err != nil {
			printError(virtOS, "لا يمكن تغيير صلاحيات '%s' - %v", "Cannot change mode of '%s' - %v", path, err)
			anyFailed = true
		}
	}

	if anyFailed {
		return 1
	}
	return 0
}

var _ vos.ProcessFunc = Chmod

func init() {
	mustAddBuiltin("chmod", "تغيير الصلاحيات / Change file mode", Chmod, "صلاحيات", "chmod")
}
