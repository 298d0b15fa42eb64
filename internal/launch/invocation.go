package launch

import (
	"github.com/danmuck/kawaiictl/internal/layout"
	"github.com/danmuck/kawaiictl/internal/version"
	"github.com/google/uuid"
)

const (
	LauncherBrand   = "Kawaii"
	LauncherVersion = "100"

	// OfflineAccessToken stands in for a session token; nothing validates it.
	OfflineAccessToken = "0"
)

// OfflineUUID is the all-zero player id used without authentication.
var OfflineUUID = uuid.Nil.String()

// Invocation is everything AssembleArgs reads.
type Invocation struct {
	Username   string
	Descriptor version.Descriptor
	Layout     layout.Layout
	Classpath  string
	Platform   Platform
}

// Plan is one fully assembled runtime invocation.
type Plan struct {
	Executable string
	Args       []string
	Classpath  string
}

// AssembleArgs builds the runtime argument vector: platform flags, system
// properties, classpath, main class, then game arguments.
func AssembleArgs(in Invocation) []string {
	natives := in.Layout.Natives
	desc := in.Descriptor

	flags := in.Platform.Flags()
	args := make([]string, 0, len(flags)+26)
	args = append(args, flags...)
	args = append(args,
		"-Djava.library.path="+natives,
		"-Djna.tmpdir="+natives,
		"-Dorg.lwjgl.system.SharedLibraryExtractPath="+natives,
		"-Dio.netty.native.workdir="+natives,
		"-Dminecraft.launcher.brand="+LauncherBrand,
		"-Dminecraft.launcher.version="+LauncherVersion,
		"-cp", in.Classpath,
		desc.MainClass,
	)
	args = append(args, gameArgs(in)...)
	return args
}

func gameArgs(in Invocation) []string {
	desc := in.Descriptor
	return []string{
		"--username", in.Username,
		"--version", desc.ID,
		"--gameDir", in.Layout.Root,
		"--assetsDir", in.Layout.Assets,
		"--assetIndex", desc.AssetIndex.ID,
		"--uuid", OfflineUUID,
		"--accessToken", OfflineAccessToken,
		"--versionType", desc.Type,
	}
}
