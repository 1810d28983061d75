package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"text/tabwriter"

	fcolor "github.com/fatih/color"
	"github.com/osama1998H/ocean/core/vos"
	"github.com/spf13/afero"
)

// Ls lists directory contents, one entry per line.
func Ls(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "اعرض [OPTION]... [FILE]...",
		Short: "عرض الملفات / List information about the FILEs (the current directory by default).",
	}

	opts := cmd.Flags()
	listAll := opts.Bool('a', "don't ignore entries starting with .")
	longListing := opts.Bool('l', "use a long listing format")

	var color ColorPrinter
	color.Init(opts, virtOS)

	return cmd.Run(virtOS, func() int {
		toList := opts.Args()
		if len(toList) == 0 {
			toList = append(toList, ".")
		}
		sort.Strings(toList)

		showDirectoryNames := len(toList) > 1
		w := virtOS.Stdout()

		exitCode := 0
		for i, target := range toList {
			entries, err := listEntries(virtOS, target, *listAll)
			if err != nil {
				printError(virtOS, "لا يمكن قراءة المجلد '%s' - %v", "Cannot read directory '%s' - %v", target, err)
				exitCode = 1
				continue
			}

			if showDirectoryNames {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s:\n", target)
			}

			if *longListing {
				tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
				for _, f := range entries {
					fmt.Fprintf(tw, "%s\t%d\t%s\t %s\n",
						f.Mode().String(),
						f.Size(),
						f.ModTime().Format("Jan _2 15:04"),
						displayName(&color, f))
				}
				tw.Flush()
				continue
			}

			for _, f := range entries {
				fmt.Fprintln(w, displayName(&color, f))
			}
		}

		return exitCode
	})
}

// listEntries returns the sorted contents of a directory, or the file itself
// if target isn't a directory.
func listEntries(virtOS vos.VOS, target string, listAll bool) ([]os.FileInfo, error) {
	stat, err := lstatIfPossible(virtOS, target)
	if err != nil {
		return nil, err
	}
	if !stat.IsDir() {
		return []os.FileInfo{stat}, nil
	}

	all, err := afero.ReadDir(virtOS, target)
	if err != nil {
		return nil, err
	}

	var out []os.FileInfo
	for _, f := range all {
		if !listAll && strings.HasPrefix(f.Name(), ".") {
			continue
		}
		out = append(out, f)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out, nil
}

func lstatIfPossible(virtOS vos.VOS, name string) (os.FileInfo, error) {
	if lstater, ok := virtOS.(afero.Lstater); ok {
		fi, _, err := lstater.LstatIfPossible(name)
		return fi, err
	}
	return virtOS.Stat(name)
}

func displayName(color *ColorPrinter, f os.FileInfo) string {
	name := f.Name()
	if f.IsDir() {
		name += "/"
	}
	return color.Sprintf(Dircolor(f), "%s", name)
}

type LsColorTest struct {
	color *fcolor.Color
	test  func(fileInfo os.FileInfo) bool
}

var dircolors = []LsColorTest{
	// Directories are bold blue.
	{color: ColorBoldBlue, test: os.FileInfo.IsDir},
	// Symlinks are bold cyan.
	{color: ColorBoldCyan, test: func(fi os.FileInfo) bool {
		return fi.Mode()&fs.ModeSymlink > 0
	}},
	// Executables are bold green.
	{color: ColorBoldGreen, test: func(fi os.FileInfo) bool {
		return fi.Mode().Perm()&0111 > 0
	}},
	// Read only files are bold red.
	{color: ColorBoldRed, test: func(fi os.FileInfo) bool {
		return fi.Mode().Perm()&0222 == 0
	}},
	// Archives are red.
	{color: fcolor.New(fcolor.FgRed), test: func(fi os.FileInfo) bool {
		switch path.Ext(fi.Name()) {
		case ".tar", ".tgz", ".zip", ".gz", ".bz2", ".xz", ".deb", ".rpm", ".jar":
			return true
		default:
			return false
		}
	}},
}

// Dircolor picks the color used to display a file.
func Dircolor(fileInfo os.FileInfo) *fcolor.Color {
	for _, dc := range dircolors {
		if dc.test(fileInfo) {
			return dc.color
		}
	}

	return fcolor.New(fcolor.Reset)
}

var _ vos.ProcessFunc = Ls

func init() {
	mustAddBuiltin("ls", "عرض الملفات / List files", Ls, "اعرض", "ls", "dir")
}
