package testutil

// PlaceholderSHA256 is the checksum the unreleased formula carries
const PlaceholderSHA256 = "0000000000000000000000000000000000000000000000000000000000000000"

// Digests used as release checksums across tests
const (
	Arm64SHA256 = "6f1ed002ab5595859014ebf0951522d9e6b1d4c2b1a8f3c5e7d9a0b2c4e6f8a1"
	X8664SHA256 = "a3c5e7f9b1d3f5a7c9e1b3d5f7a9c1e3b5d7f9a1c3e5b7d9f1a3c5e7b9d1f3a5"
)

// VelarFormula is the formula as committed before a release
const VelarFormula = `class Velar < Formula
  desc "Local privacy proxy that masks secrets before they leave your machine"
  homepage "https://github.com/velar-dev/velar"
  version "0.0.0"
  license "MIT"

  on_macos do
    on_arm do
      url "https://github.com/velar-dev/velar/releases/download/v0.0.0/velar-darwin-arm64-v0.0.0.tar.gz"
      sha256 "` + PlaceholderSHA256 + `"
    end

    on_intel do
      url "https://github.com/velar-dev/velar/releases/download/v0.0.0/velar-darwin-x86_64-v0.0.0.tar.gz"
      sha256 "` + PlaceholderSHA256 + `"
    end
  end

  def install
    bin.install "velar"
    bin.install "velard"
  end

  test do
    system "#{bin}/velar", "--version"
  end
end
`

// VelarFormulaV123 is VelarFormula after releasing v1.2.3 with Arm64SHA256 and X8664SHA256
const VelarFormulaV123 = `class Velar < Formula
  desc "Local privacy proxy that masks secrets before they leave your machine"
  homepage "https://github.com/velar-dev/velar"
  version "1.2.3"
  license "MIT"

  on_macos do
    on_arm do
      url "https://github.com/velar-dev/velar/releases/download/v1.2.3/velar-darwin-arm64-v1.2.3.tar.gz"
      sha256 "` + Arm64SHA256 + `"
    end

    on_intel do
      url "https://github.com/velar-dev/velar/releases/download/v1.2.3/velar-darwin-x86_64-v1.2.3.tar.gz"
      sha256 "` + X8664SHA256 + `"
    end
  end

  def install
    bin.install "velar"
    bin.install "velard"
  end

  test do
    system "#{bin}/velar", "--version"
  end
end
`
