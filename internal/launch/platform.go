package launch

import "runtime"

// Platform is the target OS/architecture pair that selects optional flags,
// the list separator and the runtime executable.
type Platform struct {
	OS   string
	Arch string
}

// HostPlatform is the build target of the running binary.
func HostPlatform() Platform {
	return Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (p Platform) windows() bool { return p.OS == "windows" }

// ListSeparator joins classpath entries.
func (p Platform) ListSeparator() string {
	if p.windows() {
		return ";"
	}
	return ":"
}

// Executable is the JVM launcher binary name for the platform.
func (p Platform) Executable() string {
	if p.windows() {
		return "javaw"
	}
	return "java"
}

type platformFlag struct {
	matches func(Platform) bool
	flag    string
}

func onOS(goos string) func(Platform) bool {
	return func(p Platform) bool { return p.OS == goos }
}

func onArch(goarch string) func(Platform) bool {
	return func(p Platform) bool { return p.Arch == goarch }
}

// platformFlags is the closed set of conditional runtime flags, in emit order.
var platformFlags = []platformFlag{
	{matches: onOS("darwin"), flag: "-XstartOnFirstThread"},
	{matches: onOS("windows"), flag: "-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump"},
	{matches: onArch("386"), flag: "-Xss1M"},
}

// Flags returns the conditional flags that apply to p.
func (p Platform) Flags() []string {
	out := make([]string, 0, len(platformFlags))
	for _, f := range platformFlags {
		if f.matches(p) {
			out = append(out, f.flag)
		}
	}
	return out
}
