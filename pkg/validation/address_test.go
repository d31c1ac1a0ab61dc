package validation

import "testing"

func TestValidateWalletAddress(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"valid lowercase", "0x1234567890123456789012345678901234567890", false},
		{"valid mixed case", "0xAbCdEf1234567890123456789012345678901234", false},
		{"uppercase prefix", "0X1234567890123456789012345678901234567890", true},
		{"empty", "", true},
		{"missing prefix", "1234567890123456789012345678901234567890", true},
		{"too short", "0x12345678901234567890123456789012345678", true},
		{"too long", "0x123456789012345678901234567890123456789012", true},
		{"non-hex characters", "0x123456789012345678901234567890123456789g", true},
		{"prefix only", "0x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWalletAddress(tt.addr)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateWalletAddress(%q) = nil, want error", tt.addr)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateWalletAddress(%q) = %v, want nil", tt.addr, err)
			}
		})
	}
}
