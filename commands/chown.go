package commands

import (
	"fmt"
	"os/user"
	"strconv"
	"strings"

	"github.com/osama1998H/ocean/core/vos"
)

// ParseOwner parses OWNER[:GROUP] into numeric ids, -1 leaves an id
// unchanged. Names are resolved through the host user database.
func ParseOwner(spec string) (uid, gid int, err error) {
	owner, group, hasGroup := strings.Cut(spec, ":")
	uid, gid = -1, -1

	if owner != "" {
		if uid, err = lookupID(owner, lookupUser); err != nil {
			return -1, -1, err
		}
	}

	if hasGroup && group != "" {
		if gid, err = lookupID(group, lookupGroup); err != nil {
			return -1, -1, err
		}
	}

	if uid == -1 && gid == -1 {
		return -1, -1, fmt.Errorf("invalid owner %q", spec)
	}
	return uid, gid, nil
}

func lookupID(name string, lookup func(string) (string, error)) (int, error) {
	if id, err := strconv.Atoi(name); err == nil {
		if id < 0 {
			return -1, fmt.Errorf("invalid id %q", name)
		}
		return id, nil
	}

	id, err := lookup(name)
	if err != nil {
		return -1, err
	}
	return strconv.Atoi(id)
}

func lookupUser(name string) (string, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return "", err
	}
	return u.Uid, nil
}

func lookupGroup(name string) (string, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return "", err
	}
	return g.Gid, nil
}

// Chown changes the owner and group of files.
func Chown(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "مالك OWNER[:GROUP] FILE...",
		Short: "تغيير المالك / Change the owner and group of each FILE.",
	}

	return cmd.Run(virtOS, func() int {
		args := cmd.Flags().Args()
		if len(args) < 2 {
			printError(virtOS, "يرجى تحديد المالك والملف", "missing operand")
			return 1
		}

		uid, gid, err := ParseOwner(args[0])
		if err != nil {
			virtOS.LogInvalidInvocation(err)
			printError(virtOS, "مالك غير صالح '%s' - %v", "invalid owner '%s' - %v", args[0], err)
			return 1
		}

		anyFailed := false
		for _, path := range args[1:] {
			if err := virtOS.Chown(path, uid, gid); err != nil {
				printError(virtOS, "لا يمكن تغيير مالك '%s' - %v", "Cannot change owner of '%s' - %v", path, err)
				anyFailed = true
			}
		}

		if anyFailed {
			return 1
		}
		return 0
	})
}

var _ vos.ProcessFunc = Chown

func init() {
	mustAddBuiltin("chown", "تغيير المالك / Change file owner", Chown, "مالك", "chown")
}
