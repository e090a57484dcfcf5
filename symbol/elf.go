package symbol

import (
	"debug/elf"
	"fmt"
)

// ELFFile resolves symbols from the dynamic symbol table of a shared object
// on disk. Addresses are the link-time values, not load addresses.
type ELFFile struct {
	f       *elf.File
	exports map[string]uintptr
}

// OpenELF opens the shared object at path and indexes its exported symbols.
func OpenELF(path string) (*ELFFile, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, err
	}

	syms, err := f.DynamicSymbols()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: reading dynamic symbols: %w", path, err)
	}

	exports := make(map[string]uintptr, len(syms))
	for _, s := range syms {
		if s.Section == elf.SHN_UNDEF {
			continue
		}
		switch elf.ST_BIND(s.Info) {
		case elf.STB_GLOBAL, elf.STB_WEAK:
		default:
			continue
		}
		switch elf.ST_TYPE(s.Info) {
		case elf.STT_FUNC, elf.STT_OBJECT:
		default:
			continue
		}
		// Keep the first definition, matching dlsym.
		if _, ok := exports[s.Name]; !ok {
			exports[s.Name] = uintptr(s.Value)
		}
	}

	return &ELFFile{f: f, exports: exports}, nil
}

func (e *ELFFile) Resolve(name string) (uintptr, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}
	addr, ok := e.exports[name]
	if !ok {
		return 0, &UnresolvedError{Name: name, Reason: "not exported"}
	}
	return addr, nil
}

// Len returns the number of exported symbols.
func (e *ELFFile) Len() int {
	return len(e.exports)
}

func (e *ELFFile) Close() error {
	return e.f.Close()
}
