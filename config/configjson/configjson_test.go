package configjson_test

import (
	"encoding/json"
	"testing"

	"github.com/SysMan-One/libconfig/config"
	"github.com/SysMan-One/libconfig/config/configjson"
	"github.com/SysMan-One/libconfig/config/parser"
)

func TestMarshalProducesExpectedShape(t *testing.T) {
	doc := config.New()
	src := `
server = {
  port = 8080;
};
`
	if err := parser.Parse(doc, []byte(src), "t.cfg"); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	data, err := configjson.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v\ndata: %s", err, data)
	}
	children, ok := decoded["children"].([]any)
	if !ok || len(children) != 1 {
		t.Fatalf("expected one child, got %v", decoded["children"])
	}
	server := children[0].(map[string]any)
	if server["name"] != "server" || server["kind"] != "group" {
		t.Fatalf("unexpected server node: %v", server)
	}
}
