package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	ListenAddr  string `json:"listen_addr" yaml:"listen_addr" toml:"listen_addr"`
	TempDir     string `json:"temp_dir" yaml:"temp_dir" toml:"temp_dir"`
	MaxUploadMB int    `json:"max_upload_mb" yaml:"max_upload_mb" toml:"max_upload_mb"`
	ReportDir   string `json:"report_dir" yaml:"report_dir" toml:"report_dir"`
	AWSProfile  string `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile"`
}
