package credentials

import "testing"

func TestHashPasswordSaltsEveryCall(t *testing.T) {
	first, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	second, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical; salt is not random")
	}
	if !CheckPassword("correct horse battery staple", first) {
		t.Error("first hash does not verify")
	}
	if !CheckPassword("correct horse battery staple", second) {
		t.Error("second hash does not verify")
	}
}

func TestCheckPasswordRejectsWrongPassword(t *testing.T) {
	hash, err := HashPassword("the right one")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}

	if CheckPassword("the wrong one", hash) {
		t.Error("wrong password verified against hash")
	}
	if CheckPassword("", hash) {
		t.Error("empty password verified against hash")
	}
}

func TestDummyHashNeverVerifies(t *testing.T) {
	if CheckPassword("definitely-not-the-dummy-plaintext", DummyHash) {
		t.Error("arbitrary password verified against the dummy hash")
	}
}
