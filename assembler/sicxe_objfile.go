// sicxe_objfile.go - Object file reader

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

SIC/XE Object File Reader
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ObjectFile is an object program read back from its records.
type ObjectFile struct {
	Name          string
	Start         uint32
	Size          uint32
	Text          []TextBlock
	Modifications []Modification
	Entry         uint32
	HasEnd        bool
}

// TextBlock is the content of one T record.
type TextBlock struct {
	Start uint32
	Data  []byte
}

// Modification is one M record.
type Modification struct {
	Address uint32
	Length  int
	Sign    byte
	Symbol  string
}

func parseHex(s string, bits int) (uint64, error) {
	return strconv.ParseUint(s, 16, bits)
}

func malformed(line string, num int) error {
	return fmt.Errorf("%w: line %d: %q", ErrMalformedRecord, num, line)
}

// ReadObject parses H, T, M and E records from r.
func ReadObject(r io.Reader) (*ObjectFile, error) {
	obj := &ObjectFile{}
	sc := bufio.NewScanner(r)
	num := 0
	sawHeader := false
	for sc.Scan() {
		num++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		switch line[0] {
		case 'H':
			if len(line) != 19 || sawHeader {
				return nil, malformed(line, num)
			}
			start, err1 := parseHex(line[7:13], 24)
			size, err2 := parseHex(line[13:19], 24)
			if err1 != nil || err2 != nil {
				return nil, malformed(line, num)
			}
			obj.Name = strings.TrimRight(line[1:7], " ")
			obj.Start, obj.Size = uint32(start), uint32(size)
			sawHeader = true

		case 'T':
			if len(line) < 9 {
				return nil, malformed(line, num)
			}
			start, err1 := parseHex(line[1:7], 24)
			count, err2 := parseHex(line[7:9], 8)
			if err1 != nil || err2 != nil || len(line) != 9+int(count)*2 {
				return nil, malformed(line, num)
			}
			data, err := hex.DecodeString(line[9:])
			if err != nil {
				return nil, malformed(line, num)
			}
			obj.Text = append(obj.Text, TextBlock{Start: uint32(start), Data: data})

		case 'M':
			if len(line) < 10 {
				return nil, malformed(line, num)
			}
			addr, err1 := parseHex(line[1:7], 24)
			length, err2 := parseHex(line[7:9], 8)
			if err1 != nil || err2 != nil || (line[9] != '+' && line[9] != '-') {
				return nil, malformed(line, num)
			}
			obj.Modifications = append(obj.Modifications, Modification{
				Address: uint32(addr),
				Length:  int(length),
				Sign:    line[9],
				Symbol:  line[10:],
			})

		case 'E':
			if len(line) != 7 {
				return nil, malformed(line, num)
			}
			entry, err := parseHex(line[1:7], 24)
			if err != nil {
				return nil, malformed(line, num)
			}
			obj.Entry = uint32(entry)
			obj.HasEnd = true

		default:
			return nil, malformed(line, num)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, fmt.Errorf("%w: no header record", ErrMalformedRecord)
	}
	return obj, nil
}
