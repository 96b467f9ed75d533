package stylist

import "strings"

// checkCommaSpacing implements the two comma rules: a trailing comma
// right before the newline is good practice (the parser tolerates it but
// it usually means a forgotten argument), while a comma not followed by
// a space anywhere else is non-compliant.
func checkCommaSpacing(src string, lines []string) []Diagnostic {
	var out []Diagnostic
	for i, raw := range lines {
		line := strings.TrimSuffix(raw, "\r")
		active, hasComment := activeSegment(raw)

		if !hasComment && strings.HasSuffix(line, ",") {
			out = append(out, Diagnostic{
				Kind:     GoodPractice,
				Message:  "trailing comma before end of line",
				Location: Location{Line: i + 1, Column: len(line)},
			})
		}

		for col := 0; col < len(active); col++ {
			if active[col] != ',' {
				continue
			}
			isTrailing := !hasComment && col == len(line)-1
			if isTrailing {
				continue // already reported above
			}
			if col+1 >= len(active) || active[col+1] != ' ' {
				out = append(out, Diagnostic{
					Kind:     NonCompliant,
					Message:  "comma not followed by a space",
					Location: Location{Line: i + 1, Column: col + 1},
				})
			}
		}
	}
	return out
}

// checkLongJumpTargets flags "jmp <name>" calls whose target has more
// than one alphanumeric letter, since non-folding linkers encode only a
// procedure's first letter.
func checkLongJumpTargets(src string, lines []string) []Diagnostic {
	var out []Diagnostic
	for i, raw := range lines {
		active, _ := activeSegment(raw)
		fields := strings.Fields(active)
		for i2 := 0; i2+1 < len(fields); i2++ {
			if fields[i2] != "jmp" {
				continue
			}
			name := strings.TrimSuffix(fields[i2+1], ",")
			if countAlphanumeric(name) > 1 {
				out = append(out, Diagnostic{
					Kind:     GoodPractice,
					Message:  "jmp target " + name + " has more than one significant letter",
					Location: Location{Line: i + 1, Column: strings.Index(active, name) + 1},
				})
			}
			break
		}
	}
	return out
}

func countAlphanumeric(s string) int {
	n := 0
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			n++
		}
	}
	return n
}

// checkFinalNewline flags a source file that does not end in a newline.
func checkFinalNewline(src string, lines []string) []Diagnostic {
	if src == "" || strings.HasSuffix(src, "\n") {
		return nil
	}
	return []Diagnostic{{
		Kind:     GoodPractice,
		Message:  "file does not end in a newline",
		Location: Location{Line: len(lines), Column: len(lines[len(lines)-1]) + 1},
	}}
}
