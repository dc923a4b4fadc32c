/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package coreconfig

import (
	"fmt"

	libval "github.com/go-playground/validator/v10"

	"github.com/nabbar/httpcore/herr"
)

// Defaults for the three parser/body knobs spec.md §6 names.
const (
	DefaultMaxChunkSize                      = 16 << 20 // 16 MiB
	DefaultFieldValueParserStackSizeLimit    = 1000
	DefaultFieldValueParserCommentDepthLimit = 100
)

// Config is the process-global configuration surface: the parser/body knobs
// the core itself needs, plus the Name/Listen/Expose triple the optional TCP
// supervisor uses to bind and advertise a listener.
type Config struct {
	// MaxChunkSize bounds any single decoded chunk. Zero means
	// DefaultMaxChunkSize.
	MaxChunkSize int `mapstructure:"max_chunk_size" json:"max_chunk_size" yaml:"max_chunk_size" toml:"max_chunk_size"`

	// FieldValueParserStackSizeLimit caps the structured field-value
	// parser's escape-accumulator depth. Zero means the default.
	FieldValueParserStackSizeLimit int `mapstructure:"field_value_parser_stack_size_limit" json:"field_value_parser_stack_size_limit" yaml:"field_value_parser_stack_size_limit" toml:"field_value_parser_stack_size_limit"`

	// FieldValueParserCommentDepthLimit caps comment nesting in a
	// structured field value. Zero means the default.
	FieldValueParserCommentDepthLimit int `mapstructure:"field_value_parser_comment_depth_limit" json:"field_value_parser_comment_depth_limit" yaml:"field_value_parser_comment_depth_limit" toml:"field_value_parser_comment_depth_limit"`

	// Name identifies this server instance among several sharing one
	// configuration file.
	Name string `mapstructure:"name" json:"name" yaml:"name" toml:"name" validate:"required"`

	// Listen is the local bind address (host:port) the supervisor's TCP
	// listener binds.
	Listen string `mapstructure:"listen" json:"listen" yaml:"listen" toml:"listen" validate:"required,hostname_port"`

	// Expose is the externally-reachable address this server answers to,
	// used for logging and health reporting only.
	Expose string `mapstructure:"expose" json:"expose" yaml:"expose" toml:"expose" validate:"required,url"`
}

// Default returns a Config with every knob at its spec-mandated default and
// Name/Listen/Expose left empty (the caller, or viper, fills those in).
func Default() Config {
	return Config{
		MaxChunkSize:                      DefaultMaxChunkSize,
		FieldValueParserStackSizeLimit:    DefaultFieldValueParserStackSizeLimit,
		FieldValueParserCommentDepthLimit: DefaultFieldValueParserCommentDepthLimit,
	}
}

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	return Config{
		MaxChunkSize:                      c.MaxChunkSize,
		FieldValueParserStackSizeLimit:    c.FieldValueParserStackSizeLimit,
		FieldValueParserCommentDepthLimit: c.FieldValueParserCommentDepthLimit,
		Name:                              c.Name,
		Listen:                            c.Listen,
		Expose:                            c.Expose,
	}
}

// applyDefaults fills any zero-valued knob with its spec default. Called by
// Validate so a caller that only sets Name/Listen/Expose still gets working
// parser/body limits.
func (c *Config) applyDefaults() {
	if c.MaxChunkSize <= 0 {
		c.MaxChunkSize = DefaultMaxChunkSize
	}
	if c.FieldValueParserStackSizeLimit <= 0 {
		c.FieldValueParserStackSizeLimit = DefaultFieldValueParserStackSizeLimit
	}
	if c.FieldValueParserCommentDepthLimit <= 0 {
		c.FieldValueParserCommentDepthLimit = DefaultFieldValueParserCommentDepthLimit
	}
}

// Validate fills in defaults for any unset knob, then runs struct-tag
// validation over Name/Listen/Expose.
func (c *Config) Validate() herr.Error {
	c.applyDefaults()

	er := libval.New().Struct(c)
	if er == nil {
		return nil
	}

	err := herr.New(CodeValidation, "configuration validation failed")
	if e, ok := er.(*libval.InvalidValidationError); ok {
		err.AddParent(e)
	}

	if verrs, ok := er.(libval.ValidationErrors); ok {
		for _, e := range verrs {
			err.AddParent(fmt.Errorf("field %q fails constraint %q", e.StructNamespace(), e.ActualTag()))
		}
	}

	return err
}
