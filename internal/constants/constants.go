// Package constants содержит все константы, используемые в проекте xplatfs.
// Константы сгруппированы по их функциональному назначению для удобства использования и поддержки.
package constants

// Константы сообщений приложения
const (
	// MsgAppExit - сообщение о завершении работы программы
	MsgAppExit = "Завершение работы программы"
	// MsgErrProcessing - сообщение об обработке ошибки
	MsgErrProcessing = "Обработка ошибки"
)

// Константы действий (команд)
const (
	// ActCreateFolder - рекурсивное создание папки
	ActCreateFolder = "create-folder"
	// ActDeleteFile - удаление файла
	ActDeleteFile = "delete-file"
	// ActDeleteFolder - удаление папки (пустой или рекурсивно)
	ActDeleteFolder = "delete-folder"
	// ActMove - перемещение файла или папки
	ActMove = "move"
	// ActCopy - копирование файла или папки
	ActCopy = "copy"
	// ActStat - сведения о файле или папке
	ActStat = "stat"
	// ActTempFolder - временная папка
	ActTempFolder = "temp-folder"
	// ActAppTempFolder - временная папка приложения
	ActAppTempFolder = "app-temp-folder"
	// ActAppDataFolder - папка данных приложения
	ActAppDataFolder = "app-data-folder"
	// ActTempFile - создание уникального временного файла
	ActTempFile = "temp-file"
	// ActWhere - путь к исполняемому файлу и текущая директория
	ActWhere = "where"
	// ActFreeSpace - свободное место на томе
	ActFreeSpace = "free-space"
	// ActVersion - версия приложения
	ActVersion = "version"
	// ActHelp - список команд
	ActHelp = "help"
)

// Константы API
const (
	// APIVersion - версия API
	APIVersion = "v1"
	// AppName - имя приложения
	AppName = "xplatfs"
)

// Константы уровней логирования
const (
	// LogLevelDebug - уровень отладки
	LogLevelDebug = "debug"
	// LogLevelInfo - информационный уровень
	LogLevelInfo = "info"
	// LogLevelWarn - уровень предупреждений
	LogLevelWarn = "warn"
	// LogLevelError - уровень ошибок
	LogLevelError = "error"
)

// Переменные окружения, которые читаются вне cleanenv
const (
	// EnvOutputFormat - формат вывода результата команды (json, text)
	EnvOutputFormat = "XPLATFS_OUTPUT_FORMAT"
	// EnvCommand - имя команды, если она не передана аргументом
	EnvCommand = "XPLATFS_COMMAND"
	// EnvConfigFile - путь к YAML файлу конфигурации
	EnvConfigFile = "XPLATFS_CONFIG"
	// EnvDotenvFile - путь к .env файлу, читается до остальных переменных
	EnvDotenvFile = "XPLATFS_ENV_FILE"
)

// Коды завершения процесса
const (
	// ExitOK - успешное выполнение
	ExitOK = 0
	// ExitUnknownCommand - команда не найдена
	ExitUnknownCommand = 2
	// ExitConfigError - ошибка загрузки конфигурации
	ExitConfigError = 5
	// ExitCommandError - ошибка выполнения команды
	ExitCommandError = 8
)
