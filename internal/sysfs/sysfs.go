// Package sysfs reads and writes the kernel nodes the power HAL consults when
// it is not linked into a host that provides them.
package sysfs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/AndroidPlusProject/powerpulse-qcom/internal/logging"
)

const DefaultRoot = "/sys"

var ErrNotFound = errors.New("sysfs node not found")

// FS is a sysfs tree mounted at Root. Absolute /sys paths handed to Write are
// remapped under Root so tests can point it at a temporary directory.
type FS struct {
	Root string
}

func New(root string) *FS {
	if root == "" {
		root = DefaultRoot
	}
	return &FS{Root: root}
}

// SocID reads the numeric SoC identifier.
func (fs *FS) SocID() (int, error) {
	path := pathLoop(Paths_SocID, fs.Root)
	if path == "" {
		return 0, fmt.Errorf("soc id under %s: %w", fs.Root, ErrNotFound)
	}
	raw, err := fs.read(path)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse soc id %q from %s: %w", raw, path, err)
	}
	return id, nil
}

// Governor returns the scaling governor of a logical CPU. Offline CPUs have
// no cpufreq directory and report ErrNotFound.
func (fs *FS) Governor(cpu int) (string, error) {
	path := GovernorPath(fs.Root, cpu)
	if !pathValid(path) {
		return "", fmt.Errorf("cpu%d governor: %w", cpu, ErrNotFound)
	}
	governor, err := fs.read(path)
	if err != nil {
		return "", err
	}
	if governor == "" {
		return "", fmt.Errorf("cpu%d governor is empty", cpu)
	}
	return governor, nil
}

// ScalingMinFreqPath maps a CPU to its scaling_min_freq node under Root.
func (fs *FS) ScalingMinFreqPath(cpu int) string {
	return ScalingMinFreqPath(fs.Root, cpu)
}

// Write stores data into path, skipping the write when the node already
// holds the same value.
func (fs *FS) Write(path, data string) error {
	path = fs.resolve(path)
	if current, err := fs.read(path); err == nil && current == data {
		logging.Debug("Skipping reset !> %s", path)
		return nil
	}
	logging.Debug("Writing '%s' > %s", data, path)
	if err := writeNode(path, data); err != nil {
		return fmt.Errorf("write '%s' > %s: %w", data, path, err)
	}
	return nil
}

func (fs *FS) resolve(path string) string {
	if fs.Root == DefaultRoot || !strings.HasPrefix(path, DefaultRoot+"/") {
		return path
	}
	return pathJoin(fs.Root, strings.TrimPrefix(path, DefaultRoot+"/"))
}

func (fs *FS) read(path string) (string, error) {
	buffer, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(buffer)), nil
}

// writeNode issues a single write(2); sysfs attributes reject partial and
// appended writes, so the file is opened for truncation and retried on EINTR.
func writeNode(path, data string) error {
	var fd int
	var err error
	for {
		fd, err = unix.Open(path, unix.O_WRONLY|unix.O_TRUNC|unix.O_CLOEXEC, 0)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		return err
	}
	defer unix.Close(fd)

	buf := []byte(data)
	for {
		n, err := unix.Write(fd, buf)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n != len(buf) {
			return fmt.Errorf("short write: %d of %d bytes", n, len(buf))
		}
		return nil
	}
}
