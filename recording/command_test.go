package recording

import "testing"

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		cmd  CommandType
		want string
	}{
		{CmdDrawPixel, "DrawPixel"},
		{CmdDrawPath, "DrawPath"},
		{CmdDrawRect, "DrawRect"},
		{CmdDrawCircle, "DrawCircle"},
		{CmdFillPolygon, "FillPolygon"},
		{CmdDrawText, "DrawText"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestCommandTypes(t *testing.T) {
	cmds := []struct {
		cmd  Command
		want CommandType
	}{
		{DrawPixelCommand{}, CmdDrawPixel},
		{DrawPathCommand{}, CmdDrawPath},
		{DrawRectCommand{}, CmdDrawRect},
		{DrawCircleCommand{}, CmdDrawCircle},
		{FillPolygonCommand{}, CmdFillPolygon},
		{DrawTextCommand{}, CmdDrawText},
	}
	for _, tt := range cmds {
		if got := tt.cmd.Type(); got != tt.want {
			t.Errorf("%T.Type() = %v, want %v", tt.cmd, got, tt.want)
		}
	}
}

func TestPathRefIsValid(t *testing.T) {
	if !PathRef(0).IsValid() {
		t.Error("PathRef(0) should be valid")
	}
	if PathRef(InvalidRef).IsValid() {
		t.Error("InvalidRef should not be valid")
	}
}
