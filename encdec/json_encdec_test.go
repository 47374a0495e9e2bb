package encdec

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type reportLine struct {
	Line   int    `json:"line"`
	Output string `json:"output"`
	Failed bool   `json:"failed"`
}

func TestJSONEncoderDecoder_Encode(t *testing.T) {
	tests := []struct {
		name    string
		encoder JSONEncoderDecoder
		value   any
		want    string
		wantErr bool
	}{
		{
			name:    "indented struct",
			value:   reportLine{Line: 1, Output: "QEXHOLJLB"},
			want:    "{\n  \"line\": 1,\n  \"output\": \"QEXHOLJLB\",\n  \"failed\": false\n}\n",
			wantErr: false,
		},
		{
			name:    "compact struct",
			encoder: JSONEncoderDecoder{Compact: true},
			value:   reportLine{Line: 2, Output: "FE::A", Failed: true},
			want:    "{\"line\":2,\"output\":\"FE::A\",\"failed\":true}\n",
			wantErr: false,
		},
		{
			name:    "encode nil value",
			value:   nil,
			want:    "null\n",
			wantErr: false,
		},
		{
			name:    "encode unsupported type",
			value:   make(chan int),
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tt.encoder.Encode(&buf, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Encode() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSONEncoderDecoder_EncodeNilWriter(t *testing.T) {
	if err := (JSONEncoderDecoder{}).Encode(nil, 1); err == nil {
		t.Error("Encode() with nil writer should fail")
	}
}

func TestJSONEncoderDecoder_Decode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		value   any
		want    any
		wantErr bool
	}{
		{
			name:  "decode struct",
			input: `{"line": 3, "output": "HELLO", "failed": false}`,
			value: &reportLine{},
			want:  &reportLine{Line: 3, Output: "HELLO"},
		},
		{
			name:    "unknown field",
			input:   `{"line": 3, "extra": true}`,
			value:   &reportLine{},
			wantErr: true,
		},
		{
			name:    "trailing data",
			input:   `{"line": 3} {"line": 4}`,
			value:   &reportLine{},
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			input:   "{line: 3}",
			value:   &reportLine{},
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			value:   &reportLine{},
			wantErr: true,
		},
		{
			name:    "decode into nil",
			input:   "{}",
			value:   nil,
			wantErr: true,
		},
		{
			name:    "non-pointer value",
			input:   "{}",
			value:   reportLine{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := JSONEncoderDecoder{}.Decode(strings.NewReader(tt.input), tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Decode() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				got, _ := tt.value.(*reportLine)
				want, _ := tt.want.(*reportLine)
				if *got != *want {
					t.Errorf("Decode() = %+v, want %+v", got, want)
				}
			}
		})
	}
}

type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("read error")
}

func TestJSONEncoderDecoder_DecodeReaderError(t *testing.T) {
	var v reportLine
	if err := (JSONEncoderDecoder{}).Decode(&errorReader{}, &v); err == nil {
		t.Error("Decode() with failing reader should fail")
	}
	if err := (JSONEncoderDecoder{}).Decode(nil, &v); err == nil {
		t.Error("Decode() with nil reader should fail")
	}
}
