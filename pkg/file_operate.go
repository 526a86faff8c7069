package pkg

import (
	"fmt"
	"io"
	"os"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsStdio reports whether path names standard input or output.
func IsStdio(path string) bool {
	return path == "" || path == "-"
}

// ReadInput 读取输入文件, 路径为空或 "-" 时读取 stdin
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if IsStdio(path) {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	exist, err := CheckFileExist(path)
	if err != nil {
		return nil, fmt.Errorf("check file exist: %w", err)
	}
	if !exist {
		return nil, fmt.Errorf("input file %s not exist", path)
	}
	return os.ReadFile(path)
}

// WriteOutput 写入输出文件, 路径为空或 "-" 时写入 stdout
func WriteOutput(path string, stdout io.Writer, data []byte) error {
	if IsStdio(path) {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
