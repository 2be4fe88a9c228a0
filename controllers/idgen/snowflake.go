package idgen

import (
	"fmt"
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

func GenerateID() int64 {
	return node.Generate().Int64()
}

// NewID mengembalikan ID string dengan prefix, contoh: "job_1916312...".
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, GenerateID())
}
