package colorcube

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"regexp"
	"strconv"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/pkg/errors"

	"scene-demos/internal/scene"
)

// DefaultFile is the data file name used when none is configured.
const DefaultFile = "cube_data.txt"

// fieldsPerLine is x,y,z,r,g,b.
const fieldsPerLine = 6

// decimalField is a plain decimal number with an optional exponent. strconv alone
// would also take hex floats, digit underscores, inf and nan.
var decimalField = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// DefaultData is written when the data file does not exist: a unit cube centred on the origin.
var DefaultData = []string{
	"0.5,0.5,0.5,1.0,0.0,0.0",
	"-0.5,0.5,0.5,0.0,1.0,0.0",
	"-0.5,-0.5,0.5,0.0,0.0,1.0",
	"0.5,-0.5,0.5,1.0,1.0,0.0",
	"0.5,0.5,-0.5,0.0,1.0,1.0",
	"-0.5,0.5,-0.5,1.0,0.0,1.0",
	"-0.5,-0.5,-0.5,0.5,0.5,0.5",
	"0.5,-0.5,-0.5,0.5,0.0,0.5",
}

// Data is the parsed content of a data file. Vertices and Colors are index-aligned.
type Data struct {
	Vertices []scene.Vec3
	Colors   []scene.Color
	Skipped  int // lines that did not have exactly six fields
}

// EnsureFile writes DefaultData to name if it does not exist. It reports whether the file was created.
func EnsureFile(fsys hackpadfs.FS, name string) (created bool, err error) {
	_, err = hackpadfs.Stat(fsys, name)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, hackpadfs.ErrNotExist) {
		return false, errors.Wrapf(err, "stat %s", name)
	}
	content := strings.Join(DefaultData, "\n") + "\n"
	if err := hackpadfs.WriteFullFile(fsys, name, []byte(content), 0644); err != nil {
		return false, errors.Wrapf(err, "write default %s", name)
	}
	return true, nil
}

// Load makes sure name exists (writing defaults if it does not) and parses it.
// A malformed number anywhere in the file fails the whole load.
func Load(fsys hackpadfs.FS, name string) (Data, error) {
	if _, err := EnsureFile(fsys, name); err != nil {
		return Data{}, err
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Data{}, errors.Wrapf(err, "read %s", name)
	}
	d, err := Parse(bytes.NewReader(b))
	if err != nil {
		return Data{}, errors.Wrap(err, name)
	}
	return d, nil
}

// Parse reads "x,y,z,r,g,b" lines. Lines with a different number of comma-separated fields
// are skipped. Each field may carry surrounding spaces. Alpha is always 1.
func Parse(r io.Reader) (Data, error) {
	var d Data
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		parts := strings.Split(sc.Text(), ",")
		if len(parts) != fieldsPerLine {
			d.Skipped++
			continue
		}
		var v [fieldsPerLine]float32
		for i, p := range parts {
			p = strings.TrimSpace(p)
			if !decimalField.MatchString(p) {
				return Data{}, errors.Errorf("line %d field %d: %q is not a decimal number", lineNo, i+1, p)
			}
			f, err := strconv.ParseFloat(p, 32)
			if err != nil {
				return Data{}, errors.Wrapf(err, "line %d field %d", lineNo, i+1)
			}
			v[i] = float32(f)
		}
		d.Vertices = append(d.Vertices, scene.Vec3{v[0], v[1], v[2]})
		d.Colors = append(d.Colors, scene.RGB(v[3], v[4], v[5]))
	}
	if err := sc.Err(); err != nil {
		return Data{}, errors.Wrap(err, "scan")
	}
	return d, nil
}

// Cube builds a cube from the parsed data with the parsed colors as its initial snapshot.
func (d Data) Cube() *Cube {
	return NewCube(d.Vertices, d.Colors)
}
