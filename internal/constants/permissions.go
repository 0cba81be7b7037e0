package constants

import "os"

// DirPermExec - права папок, создаваемых движком файловой системы
// (owner rwx, group r-x, other r-x).
const DirPermExec os.FileMode = 0755

// FilePermReadWrite - права файлов назначения при копировании
// (owner rw, group r, other r).
const FilePermReadWrite os.FileMode = 0644
