package config

type Config struct {
	// Каталог с файлом снапшота и выписками
	DataDir string
}
