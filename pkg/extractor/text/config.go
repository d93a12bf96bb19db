package text

var SupportedExtensions = []string{
	".txt",
	".csv",
	".tsv",

	".json",
	".xml",
	".yaml",
	".yml",

	".ini",
	".log",
	".md",
	".markdown",
	".rst",

	".go",
	".py",
	".js",
	".ts",
	".java",
	".kt",
	".rs",
	".rb",
	".scala",
	".swift",
	".cpp",
	".cs",
	".php",
}

var SupportedMimeTypes = []string{
	"application/json",
	"application/xml",
	"application/yaml",
}
