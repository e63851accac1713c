package driver

// Constructors for builtin table entries. Every builtin defaults to
// StyleMap; the facts layer switches to StyleList for fstab input.

func regular(t string) Descriptor {
	return Descriptor{Type: t, Category: CategoryRegular, OptionStyle: StyleMap}
}

func virtual(t string, b Backing) Descriptor {
	return Descriptor{Type: t, Category: CategoryVirtual, OptionStyle: StyleMap, Pseudo: true, Backing: b}
}

func overlay(t string) Descriptor {
	return Descriptor{Type: t, Category: CategoryOverlay, OptionStyle: StyleMap}
}

func network(t string) Descriptor {
	return Descriptor{Type: t, Category: CategoryNetwork, OptionStyle: StyleMap}
}

func withFUSE(d Descriptor, name string) Descriptor {
	d.FUSE = &FUSEDriver{Name: name}
	return d
}

func fuseGeneric(t string) Descriptor {
	return Descriptor{Type: t, Category: CategoryFUSE, OptionStyle: StyleMap, FUSE: &FUSEDriver{}}
}

func ambiguous(t string) Descriptor {
	return Descriptor{Type: t, Category: CategoryUnknown, OptionStyle: StyleMap}
}

// builtinTable returns the canonical driver table. A fresh map is built on
// every call so registries never share mutable state.
func builtinTable() map[string]Descriptor {
	entries := []Descriptor{
		// Regular filesystems, typically backed by block devices.
		regular("ext2"), regular("ext3"), regular("ext4"),
		regular("xfs"), regular("apfs"), regular("ufs"), regular("ffs"),
		regular("hfs"), regular("hfsplus"), regular("jfs"),
		regular("reiserfs"), regular("f2fs"), regular("nilfs2"),
		regular("ocfs2"), regular("gfs2"), regular("vfat"),
		regular("msdos"), regular("exfat"), regular("ntfs"),
		regular("ntfs3"), regular("bcachefs"), regular("iso9660"),
		regular("udf"), regular("squashfs"), regular("erofs"),

		// Kernel interface filesystems.
		virtual("proc", BackingKernel), virtual("procfs", BackingKernel),
		virtual("sysfs", BackingKernel), virtual("devfs", BackingKernel),
		virtual("devpts", BackingKernel), virtual("devtmpfs", BackingKernel),
		virtual("debugfs", BackingKernel), virtual("securityfs", BackingKernel),
		virtual("selinuxfs", BackingKernel), virtual("cgroup", BackingKernel),
		virtual("cgroup2", BackingKernel), virtual("pstore", BackingKernel),
		virtual("efivarfs", BackingKernel), virtual("configfs", BackingKernel),
		virtual("hugetlbfs", BackingKernel), virtual("mqueue", BackingKernel),
		virtual("bpf", BackingKernel), virtual("tracefs", BackingKernel),
		virtual("binfmt_misc", BackingKernel), virtual("rpc_pipefs", BackingKernel),
		virtual("nsfs", BackingKernel), virtual("nfsd", BackingKernel),
		virtual("fdescfs", BackingKernel),

		// Memory-backed filesystems.
		virtual("tmpfs", BackingMemory), virtual("ramfs", BackingMemory),

		// Automounter.
		virtual("autofs", ""),

		// Host/guest integration.
		virtual("vboxsf", BackingHypervisor), virtual("vmhgfs", BackingHypervisor),

		// Union and merge filesystems.
		overlay("overlay"), overlay("overlayfs"), overlay("aufs"),
		overlay("unionfs"), overlay("nullfs"), overlay("ecryptfs"),
		overlay("shiftfs"),
		withFUSE(overlay("unionfs-fuse"), "unionfs"),
		withFUSE(overlay("fuse.unionfs"), "unionfs"),
		withFUSE(overlay("mergerfs"), "mergerfs"),
		withFUSE(overlay("fuse.mergerfs"), "mergerfs"),
		withFUSE(overlay("mhddfs"), "mhddfs"),
		withFUSE(overlay("fuse.mhddfs"), "mhddfs"),

		// Transform and re-mapping filesystems.
		withFUSE(overlay("bindfs"), "bindfs"),
		withFUSE(overlay("fuse.bindfs"), "bindfs"),
		withFUSE(overlay("encfs"), "encfs"),
		withFUSE(overlay("fuse.encfs"), "encfs"),
		withFUSE(overlay("gocryptfs"), "gocryptfs"),
		withFUSE(overlay("fuse.gocryptfs"), "gocryptfs"),
		withFUSE(overlay("cryfs"), "cryfs"),
		withFUSE(overlay("fuse.cryfs"), "cryfs"),
		withFUSE(overlay("fusecompress"), "fusecompress"),
		withFUSE(overlay("fuse.fusecompress"), "fusecompress"),
		withFUSE(overlay("compfused"), "compfused"),
		withFUSE(overlay("fuse.compfused"), "compfused"),

		// Container-specific views.
		withFUSE(overlay("lxcfs"), "lxcfs"),
		withFUSE(overlay("fuse.lxcfs"), "lxcfs"),
		withFUSE(overlay("translucentfs"), "translucentfs"),
		withFUSE(overlay("fuse.translucentfs"), "translucentfs"),

		// Network filesystems.
		network("nfs"), network("nfs4"), network("smbfs"),
		network("cifs"), network("afs"), network("coda"),
		network("ncpfs"), network("glusterfs"), network("ceph"),
		network("9p"), network("smb3"), network("lustre"),
		network("orangefs"), network("pmxfs"),
		withFUSE(network("sshfs"), "sshfs"),
		withFUSE(network("fuse.sshfs"), "sshfs"),

		// FUSE NTFS (kernel-backed is ntfs or ntfs3).
		withFUSE(regular("ntfs-3g"), "ntfs-3g"),

		// Generic FUSE layers.
		fuseGeneric("fuse"),
		fuseGeneric("osxfuse"),
		fuseGeneric("osxfusefs"),
		fuseGeneric("macfuse"),
		{Type: "fuseblk", Category: CategoryFUSE, OptionStyle: StyleMap, FUSE: &FUSEDriver{Block: true}},

		// Could be a filesystem or a volume manager; left unresolved.
		ambiguous("zfs"), ambiguous("btrfs"),
		ambiguous("dm"), ambiguous("md"),
	}

	table := make(map[string]Descriptor, len(entries))
	for _, d := range entries {
		table[d.Type] = d
	}
	return table
}
