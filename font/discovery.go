package font

import (
	"os"
	"path/filepath"
	"runtime"
)

// SystemFontDirs returns the system font directories for the current
// platform.
func SystemFontDirs() []string {
	switch runtime.GOOS {
	case "darwin":
		return darwinFontDirs()
	case "linux":
		return linuxFontDirs()
	case "windows":
		return windowsFontDirs()
	default:
		return nil
	}
}

func darwinFontDirs() []string {
	dirs := []string{
		"/System/Library/Fonts",
		"/Library/Fonts",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
	}
	return filterExistingDirs(dirs)
}

func linuxFontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		)
	}
	if xdgDataDirs := os.Getenv("XDG_DATA_DIRS"); xdgDataDirs != "" {
		for _, dir := range filepath.SplitList(xdgDataDirs) {
			dirs = append(dirs, filepath.Join(dir, "fonts"))
		}
	}
	return filterExistingDirs(dirs)
}

func windowsFontDirs() []string {
	var dirs []string
	if winDir := os.Getenv("WINDIR"); winDir != "" {
		dirs = append(dirs, filepath.Join(winDir, "Fonts"))
	} else {
		dirs = append(dirs, `C:\Windows\Fonts`)
	}
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		dirs = append(dirs, filepath.Join(localAppData, "Microsoft", "Windows", "Fonts"))
	}
	return filterExistingDirs(dirs)
}

func filterExistingDirs(dirs []string) []string {
	existing := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			existing = append(existing, dir)
		}
	}
	return existing
}

// DiscoverFonts walks dirs recursively and returns a PlatformFontInfo for
// every font file found, suitable for Registry.LoadSystem. Family/weight/
// style metadata is filled in from the file itself rather than a platform
// catalog, since this is the directory-walk fallback discovery mechanism
// rather than fontconfig/CoreText/DirectWrite.
func DiscoverFonts(dirs []string) []PlatformFontInfo {
	var infos []PlatformFontInfo
	seen := make(map[string]bool)

	for _, dir := range dirs {
		_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // skip inaccessible entries
			}
			if info.IsDir() || seen[path] || !IsFontFile(path) {
				return nil
			}
			seen[path] = true

			fonts, err := LoadFromFile(path)
			if err != nil || len(fonts) == 0 {
				return nil
			}
			first := fonts[0]
			infos = append(infos, PlatformFontInfo{
				FamilyName:   first.Info.Family,
				Path:         path,
				Weight:       first.Info.Weight,
				Style:        first.Info.Style,
				IsSystemFont: true,
			})
			return nil
		})
	}

	return infos
}

// DiscoverSystemFonts discovers fonts across every system font directory
// for the current platform.
func DiscoverSystemFonts() []PlatformFontInfo {
	return DiscoverFonts(SystemFontDirs())
}
