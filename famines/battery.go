package famines

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"
)

// BatteryRAM is battery-backed work RAM persisted through a
// memory-mapped .sav file next to the ROM, so every write lands on
// disk without explicit save points.
type BatteryRAM struct {
	file *os.File
	mmap mmap.MMap
}

func fileNameWithoutExtension(fileName string) string {
	return strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
}

// OpenBatteryRAM opens (or creates) the .sav file for the given ROM
// and maps it read/write.
func OpenBatteryRAM(romFilePath string, size int) (*BatteryRAM, error) {
	dir := filepath.Dir(filepath.Clean(romFilePath))
	savePath := filepath.Join(dir, fileNameWithoutExtension(romFilePath)+".sav")

	file, err := os.OpenFile(savePath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.Size() < int64(size) {
		if err := file.Truncate(int64(size)); err != nil {
			file.Close()
			return nil, err
		}
	}

	m, err := mmap.Map(file, mmap.RDWR, 0)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &BatteryRAM{file: file, mmap: m}, nil
}

// Data exposes the mapped save RAM.
func (b *BatteryRAM) Data() []byte {
	return b.mmap
}

func (b *BatteryRAM) Close() {
	b.mmap.Flush()
	b.mmap.Unmap()
	b.file.Close()
}
