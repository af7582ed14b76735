package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gsw-lwe/gswfhe/lwe"
	"github.com/gsw-lwe/gswfhe/sampling"
)

var gates = map[string]func(*lwe.Scheme, *lwe.Ciphertext, *lwe.Ciphertext) (*lwe.Ciphertext, error){
	"and":  (*lwe.Scheme).And,
	"or":   (*lwe.Scheme).Or,
	"nand": (*lwe.Scheme).Nand,
	"xor":  (*lwe.Scheme).Xor,
}

func main() {
	startT := time.Now()

	if len(os.Args) != 4 {
		fmt.Println("Wrong number of arguments: gate bit1 bit2")
		fmt.Println("gate is one of: and, or, nand, xor, not (ignores bit2)")
		os.Exit(1)
	}

	gate := strings.ToLower(os.Args[1])
	m1, err := parseBit(os.Args[2])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	m2, err := parseBit(os.Args[3])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	scheme := lwe.NewScheme(lwe.DefaultParameters(), sampling.NewSource(sampling.NewThreadSafePRNG()))

	keyPair, err := scheme.GenerateKey()
	if err != nil {
		fmt.Printf("key generation failed: %v\n", err)
		os.Exit(1)
	}

	c1, err := scheme.Encrypt(m1, keyPair.Public)
	if err != nil {
		fmt.Printf("encryption failed: %v\n", err)
		os.Exit(1)
	}
	c2, err := scheme.Encrypt(m2, keyPair.Public)
	if err != nil {
		fmt.Printf("encryption failed: %v\n", err)
		os.Exit(1)
	}

	var result *lwe.Ciphertext
	if gate == "not" {
		result, err = scheme.Not(c1)
	} else {
		fn, ok := gates[gate]
		if !ok {
			fmt.Printf("unknown gate %q\n", gate)
			os.Exit(1)
		}
		result, err = fn(scheme, c1, c2)
	}
	if err != nil {
		fmt.Printf("gate evaluation failed: %v\n", err)
		os.Exit(1)
	}

	decrypted, err := scheme.Decrypt(result, keyPair.Secret)
	if err != nil {
		fmt.Printf("decryption failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%v %v %v = %v\n", m1, gate, m2, decrypted)
	t := time.Now()
	fmt.Printf("%f s elapsed\n", t.Sub(startT).Seconds())
}

func parseBit(s string) (bool, error) {
	switch s {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	default:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return false, fmt.Errorf("cannot parse %q as a bit", s)
		}
		return v, nil
	}
}
