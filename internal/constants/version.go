package constants

// Version и PreCommitHash подставляются при сборке:
//
//	go build -ldflags "-X github.com/Kargones/xplatfs/internal/constants.Version=1.2.0"
var (
	// Version - версия приложения
	Version = "dev"
	// PreCommitHash - хеш коммита сборки
	PreCommitHash = "unknown"
)
