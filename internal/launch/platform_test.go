package launch

import (
	"reflect"
	"runtime"
	"testing"
)

func TestPlatformFlagsTable(t *testing.T) {
	cases := []struct {
		platform Platform
		want     []string
	}{
		{Platform{OS: "linux", Arch: "amd64"}, []string{}},
		{Platform{OS: "darwin", Arch: "arm64"}, []string{"-XstartOnFirstThread"}},
		{Platform{OS: "windows", Arch: "amd64"}, []string{
			"-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump",
		}},
		{Platform{OS: "windows", Arch: "386"}, []string{
			"-XX:HeapDumpPath=MojangTricksIntelDriversForPerformance_javaw.exe_minecraft.exe.heapdump",
			"-Xss1M",
		}},
		{Platform{OS: "linux", Arch: "386"}, []string{"-Xss1M"}},
	}
	for _, tc := range cases {
		got := tc.platform.Flags()
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%+v flags=%q want %q", tc.platform, got, tc.want)
		}
	}
}

func TestPlatformExecutableAndSeparator(t *testing.T) {
	win := Platform{OS: "windows", Arch: "amd64"}
	if win.Executable() != "javaw" || win.ListSeparator() != ";" {
		t.Fatalf("unexpected windows selection: %q %q", win.Executable(), win.ListSeparator())
	}
	for _, goos := range []string{"linux", "darwin", "freebsd"} {
		p := Platform{OS: goos, Arch: "amd64"}
		if p.Executable() != "java" || p.ListSeparator() != ":" {
			t.Fatalf("unexpected %s selection: %q %q", goos, p.Executable(), p.ListSeparator())
		}
	}
}

func TestHostPlatformMatchesBuildTarget(t *testing.T) {
	host := HostPlatform()
	if host.OS != runtime.GOOS || host.Arch != runtime.GOARCH {
		t.Fatalf("unexpected host platform: %+v", host)
	}
}
