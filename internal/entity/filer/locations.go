package filer

import (
	"fmt"
	"time"
)

// TemporaryFolder возвращает временную папку платформы (TMPDIR, TMP, по
// умолчанию /tmp/). appendName, если задан, добавляется ещё одним уровнем;
// при create папка создаётся.
func (f *Filesystem) TemporaryFolder(create bool, appendName string) (Pathname, error) {
	p := NewFolderPathname(f.platform.TemporaryRoot())
	if appendName != "" {
		p = p.AppendFolder(appendName)
	}
	if create {
		if err := f.createFolder(p); err != nil {
			return Pathname{}, err
		}
	}
	f.logger.Debug("временная папка", "path", p.String(), "create", create)
	return p, nil
}

// AppTempFolder возвращает временную папку приложения
// "<приложение>-<pid>-<unix-время>". Папка создаётся при первом успешном
// вызове, и путь запоминается: последующие вызовы возвращают его без проверки
// существования, даже если папку удалили.
func (f *Filesystem) AppTempFolder() (p Pathname, err error) {
	defer func(start time.Time) { f.observe("app_temp_folder", start, err) }(time.Now())

	f.appTempMu.Lock()
	defer f.appTempMu.Unlock()

	if !f.appTempPath.IsEmpty() {
		return f.appTempPath, nil
	}
	if err = f.requireIdentity("app temp folder", false); err != nil {
		return Pathname{}, err
	}

	name := fmt.Sprintf("%s-%d-%d", f.identity.Application, f.pid, f.now().Unix())
	if p, err = f.TemporaryFolder(true, name); err != nil {
		return Pathname{}, err
	}

	f.temps.Track(p, true)
	f.appTempPath = p
	f.logger.Info("временная папка приложения", "path", p.String())
	return p, nil
}

// AppDataFolder возвращает папку данных приложения и создаёт её.
// perUser выбирает папку пользователя, иначе общую для машины.
func (f *Filesystem) AppDataFolder(perUser bool) (p Pathname, err error) {
	defer func(start time.Time) { f.observe("app_data_folder", start, err) }(time.Now())

	if err = f.requireIdentity("app data folder", true); err != nil {
		return Pathname{}, err
	}

	root, prefix, err := f.platform.AppDataRoot(perUser)
	if err != nil {
		return Pathname{}, WrapError("app data folder", "", err)
	}

	p = NewFolderPathname(root).
		AppendFolder(prefix + f.identity.Organization).
		AppendFolder(f.identity.Application)
	if err = f.createFolder(p); err != nil {
		return Pathname{}, err
	}

	f.logger.Debug("папка данных приложения", "path", p.String(), "per_user", perUser)
	return p, nil
}

// AppPathname возвращает путь к исполняемому файлу процесса.
func (f *Filesystem) AppPathname() (Pathname, error) {
	exe, err := f.platform.ExecutablePath()
	if err != nil {
		return Pathname{}, WrapError("app pathname", "", err)
	}
	return NewPathname(exe), nil
}

// CurrentDirectory возвращает текущую рабочую директорию в форме папки.
func (f *Filesystem) CurrentDirectory() (Pathname, error) {
	wd, err := f.platform.WorkingDirectory()
	if err != nil {
		f.logger.Error("не удалось определить текущую директорию", "error", err)
		return Pathname{}, WrapError("current directory", "", err)
	}
	return NewFolderPathname(wd), nil
}

// TempFilename создаёт в папке dir уникальный пустой файл с префиксом prefix
// (по умолчанию TempFilePrefix), закрывает его и возвращает путь.
// Файл регистрируется в TempManager.
func (f *Filesystem) TempFilename(dir Pathname, prefix string) (p Pathname, err error) {
	defer func(start time.Time) { f.observe("temp_filename", start, err) }(time.Now())

	if !dir.IsFolder() {
		debugAssert(false, "temp filename: %q не в форме папки", dir)
		return Pathname{}, NewFileSystemError("temp filename", dir.String(), ErrNotFolderPath, SeverityCritical)
	}
	if prefix == "" {
		prefix = TempFilePrefix
	}

	file, err := f.backend.CreateTemp(dir.TrimSeparator(), prefix+"*")
	if err != nil {
		return Pathname{}, WrapError("temp filename", dir.String(), err)
	}
	p = NewPathname(file.Name())
	if err = file.Close(); err != nil {
		return Pathname{}, WrapError("temp filename", p.String(), err)
	}

	f.temps.Track(p, true)
	f.logger.Debug("временный файл создан", "path", p.String())
	return p, nil
}
